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

package openflow

import (
	"fmt"
)

const (
	OF10_VERSION = 0x01
	OF13_VERSION = 0x04
)

const (
	// Every action starts with a type (16 bits) and a length (16 bits).
	ActionHeaderLength = 4
	// OpenFlow records are aligned to a multiple of 8 bytes.
	Alignment = 8
	// OXM TLV header: class (16 bits), field+hasmask (8 bits) and length (8 bits).
	OXMHeaderLength = 4
	// Length of the experimenter ID that follows an experimenter OXM header.
	OXMExperimenterLength = 4
)

// Padding widths. These never depend on the input data.
const (
	PadOutput13  = 6 /* ofp_action_output (1.3) */
	PadEnqueue   = 6 /* ofp_action_enqueue (1.0) */
	PadVlanVid   = 2 /* ofp_action_vlan_vid */
	PadVlanPcp   = 3 /* ofp_action_vlan_pcp */
	PadDlAddress = 6 /* ofp_action_dl_addr */
	PadNwTos     = 3 /* ofp_action_nw_tos */
	PadTpPort    = 2 /* ofp_action_tp_port */
	PadEmpty     = 4 /* ofp_action_header (header only actions) */
	PadEtherType = 2 /* ofp_action_push, ofp_action_pop_mpls */
	PadTTL       = 3 /* ofp_action_mpls_ttl, ofp_action_nw_ttl */
)

// Total record lengths of the fixed size actions.
const (
	LenOutput10   = 8
	LenOutput13   = 16
	LenEnqueue    = 16
	LenVlanVid    = 8
	LenVlanPcp    = 8
	LenDlAddress  = 16
	LenNwAddress  = 8
	LenNwTos      = 8
	LenTpPort     = 8
	LenEmpty      = 8
	LenEtherType  = 8
	LenTTL        = 8
	LenGroup      = 8
	LenSetQueue   = 8
	LenExperiment = 8 /* type, length and experimenter ID */
)

// Reserved type code for vendor (1.0) and experimenter (1.3) actions.
const OFPAT_EXPERIMENTER = 0xFFFF

// OXM classes.
const (
	OFPXMC_NXM_0          = 0x0000 /* Backward compatibility with NXM */
	OFPXMC_NXM_1          = 0x0001 /* Backward compatibility with NXM */
	OFPXMC_OPENFLOW_BASIC = 0x8000 /* Basic class for OpenFlow */
	OFPXMC_EXPERIMENTER   = 0xFFFF /* Experimenter class */
)

// VersionString returns a human readable name of the OpenFlow protocol version.
func VersionString(version uint8) string {
	switch version {
	case OF10_VERSION:
		return "OF1.0"
	case OF13_VERSION:
		return "OF1.3"
	default:
		return fmt.Sprintf("OF(0x%02x)", version)
	}
}
