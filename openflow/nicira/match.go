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

import (
	"github.com/ofwire/ofdecode/openflow"
)

func nxm1MatchEntryDecoders() map[uint8]openflow.MatchEntryDecoder {
	return map[uint8]openflow.MatchEntryDecoder{
		NXM_NX_REG0:         openflow.NewUint32MatchEntryDecoder(true),
		NXM_NX_REG1:         openflow.NewUint32MatchEntryDecoder(true),
		NXM_NX_REG2:         openflow.NewUint32MatchEntryDecoder(true),
		NXM_NX_REG3:         openflow.NewUint32MatchEntryDecoder(true),
		NXM_NX_REG4:         openflow.NewUint32MatchEntryDecoder(true),
		NXM_NX_REG5:         openflow.NewUint32MatchEntryDecoder(true),
		NXM_NX_REG6:         openflow.NewUint32MatchEntryDecoder(true),
		NXM_NX_REG7:         openflow.NewUint32MatchEntryDecoder(true),
		NXM_NX_TUN_ID:       openflow.NewUint64MatchEntryDecoder(true),
		NXM_NX_TUN_IPV4_SRC: openflow.NewIPv4MatchEntryDecoder(),
		NXM_NX_TUN_IPV4_DST: openflow.NewIPv4MatchEntryDecoder(),
		NXM_NX_CT_STATE:     openflow.NewUint32MatchEntryDecoder(true),
		NXM_NX_CT_ZONE:      openflow.NewUint16MatchEntryDecoder(false),
		NXM_NX_CT_MARK:      openflow.NewUint32MatchEntryDecoder(true),
	}
}

// experimenterMatchEntryDecoders are keyed by field within the NX_VENDOR_ID namespace.
func experimenterMatchEntryDecoders() map[uint8]openflow.MatchEntryDecoder {
	return map[uint8]openflow.MatchEntryDecoder{
		NXOXM_ET_DP_HASH: openflow.NewUint32MatchEntryDecoder(true),
	}
}

// nshMatchEntryDecoders are keyed by field within the NXOXM_NSH_ID namespace.
func nshMatchEntryDecoders() map[uint8]openflow.MatchEntryDecoder {
	return map[uint8]openflow.MatchEntryDecoder{
		NXOXM_NSH_FLAGS:  openflow.NewUint8MatchEntryDecoder(true),
		NXOXM_NSH_MDTYPE: openflow.NewUint8MatchEntryDecoder(false),
		NXOXM_NSH_NP:     openflow.NewUint8MatchEntryDecoder(false),
		NXOXM_NSH_SPI:    openflow.NewUint32MatchEntryDecoder(false),
		NXOXM_NSH_SI:     openflow.NewUint8MatchEntryDecoder(false),
		NXOXM_NSH_C1:     openflow.NewUint32MatchEntryDecoder(true),
		NXOXM_NSH_C2:     openflow.NewUint32MatchEntryDecoder(true),
		NXOXM_NSH_C3:     openflow.NewUint32MatchEntryDecoder(true),
		NXOXM_NSH_C4:     openflow.NewUint32MatchEntryDecoder(true),
		NXOXM_NSH_TTL:    openflow.NewUint8MatchEntryDecoder(false),
	}
}
