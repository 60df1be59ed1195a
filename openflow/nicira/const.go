/*
 * Ofdecode - An OpenFlow Action Decoder
 *
 * Copyright (C) 2015 Samjung Data Service, Inc. All rights reserved.
 * Kitae Kim <superkkt@sds.co.kr>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with this program; if not, write to the Free Software Foundation, Inc.,
 * 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 */

package nicira

// Nicira vendor (experimenter) ID.
const NX_VENDOR_ID = 0x00002320

// Experimenter ID of the NSH match fields.
const NXOXM_NSH_ID = 0x005ad650

/* Nicira action subtypes. */
const (
	NXAST_RESUBMIT       = 1
	NXAST_SET_TUNNEL     = 2
	NXAST_RESUBMIT_TABLE = 14
)

/* NXM_1 class fields. */
const (
	NXM_NX_REG0         = 0
	NXM_NX_REG1         = 1
	NXM_NX_REG2         = 2
	NXM_NX_REG3         = 3
	NXM_NX_REG4         = 4
	NXM_NX_REG5         = 5
	NXM_NX_REG6         = 6
	NXM_NX_REG7         = 7
	NXM_NX_TUN_ID       = 16
	NXM_NX_TUN_IPV4_SRC = 31
	NXM_NX_TUN_IPV4_DST = 32
	NXM_NX_CT_STATE     = 105
	NXM_NX_CT_ZONE      = 106
	NXM_NX_CT_MARK      = 107
)

/* Fields of the experimenter OXM class that use NX_VENDOR_ID. */
const (
	NXOXM_ET_DP_HASH = 0
)

/* Fields of the experimenter OXM class that use NXOXM_NSH_ID. */
const (
	NXOXM_NSH_FLAGS  = 1
	NXOXM_NSH_MDTYPE = 2
	NXOXM_NSH_NP     = 3
	NXOXM_NSH_SPI    = 4
	NXOXM_NSH_SI     = 5
	NXOXM_NSH_C1     = 6
	NXOXM_NSH_C2     = 7
	NXOXM_NSH_C3     = 8
	NXOXM_NSH_C4     = 9
	NXOXM_NSH_TTL    = 10
)
