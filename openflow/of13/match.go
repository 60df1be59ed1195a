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

package of13

import (
	"github.com/ofwire/ofdecode/openflow"
)

// basicMatchEntryDecoders returns the decoders of the OpenFlow basic class, keyed by field.
func basicMatchEntryDecoders() map[uint8]openflow.MatchEntryDecoder {
	return map[uint8]openflow.MatchEntryDecoder{
		OFPXMT_OFB_IN_PORT:        openflow.NewPortMatchEntryDecoder(),
		OFPXMT_OFB_IN_PHY_PORT:    openflow.NewPortMatchEntryDecoder(),
		OFPXMT_OFB_METADATA:       openflow.NewUint64MatchEntryDecoder(true),
		OFPXMT_OFB_ETH_DST:        openflow.NewMACMatchEntryDecoder(),
		OFPXMT_OFB_ETH_SRC:        openflow.NewMACMatchEntryDecoder(),
		OFPXMT_OFB_ETH_TYPE:       openflow.NewEtherTypeMatchEntryDecoder(),
		OFPXMT_OFB_VLAN_VID:       openflow.NewUint16MatchEntryDecoder(true),
		OFPXMT_OFB_VLAN_PCP:       openflow.NewUint8MatchEntryDecoder(false),
		OFPXMT_OFB_IP_DSCP:        openflow.NewUint8MatchEntryDecoder(false),
		OFPXMT_OFB_IP_ECN:         openflow.NewUint8MatchEntryDecoder(false),
		OFPXMT_OFB_IP_PROTO:       openflow.NewUint8MatchEntryDecoder(false),
		OFPXMT_OFB_IPV4_SRC:       openflow.NewIPv4MatchEntryDecoder(),
		OFPXMT_OFB_IPV4_DST:       openflow.NewIPv4MatchEntryDecoder(),
		OFPXMT_OFB_TCP_SRC:        openflow.NewUint16MatchEntryDecoder(false),
		OFPXMT_OFB_TCP_DST:        openflow.NewUint16MatchEntryDecoder(false),
		OFPXMT_OFB_UDP_SRC:        openflow.NewUint16MatchEntryDecoder(false),
		OFPXMT_OFB_UDP_DST:        openflow.NewUint16MatchEntryDecoder(false),
		OFPXMT_OFB_SCTP_SRC:       openflow.NewUint16MatchEntryDecoder(false),
		OFPXMT_OFB_SCTP_DST:       openflow.NewUint16MatchEntryDecoder(false),
		OFPXMT_OFB_ICMPV4_TYPE:    openflow.NewUint8MatchEntryDecoder(false),
		OFPXMT_OFB_ICMPV4_CODE:    openflow.NewUint8MatchEntryDecoder(false),
		OFPXMT_OFB_ARP_OP:         openflow.NewUint16MatchEntryDecoder(false),
		OFPXMT_OFB_ARP_SPA:        openflow.NewIPv4MatchEntryDecoder(),
		OFPXMT_OFB_ARP_TPA:        openflow.NewIPv4MatchEntryDecoder(),
		OFPXMT_OFB_ARP_SHA:        openflow.NewMACMatchEntryDecoder(),
		OFPXMT_OFB_ARP_THA:        openflow.NewMACMatchEntryDecoder(),
		OFPXMT_OFB_IPV6_SRC:       openflow.NewRawMatchEntryDecoder(16, true),
		OFPXMT_OFB_IPV6_DST:       openflow.NewRawMatchEntryDecoder(16, true),
		OFPXMT_OFB_IPV6_FLABEL:    openflow.NewUint32MatchEntryDecoder(true),
		OFPXMT_OFB_ICMPV6_TYPE:    openflow.NewUint8MatchEntryDecoder(false),
		OFPXMT_OFB_ICMPV6_CODE:    openflow.NewUint8MatchEntryDecoder(false),
		OFPXMT_OFB_IPV6_ND_TARGET: openflow.NewRawMatchEntryDecoder(16, false),
		OFPXMT_OFB_IPV6_ND_SLL:    openflow.NewRawMatchEntryDecoder(6, false),
		OFPXMT_OFB_IPV6_ND_TLL:    openflow.NewRawMatchEntryDecoder(6, false),
		OFPXMT_OFB_MPLS_LABEL:     openflow.NewUint32MatchEntryDecoder(false),
		OFPXMT_OFB_MPLS_TC:        openflow.NewUint8MatchEntryDecoder(false),
		OFPXMT_OFB_MPLS_BOS:       openflow.NewUint8MatchEntryDecoder(false),
		OFPXMT_OFB_PBB_ISID:       openflow.NewRawMatchEntryDecoder(3, true),
		OFPXMT_OFB_TUNNEL_ID:      openflow.NewUint64MatchEntryDecoder(true),
		OFPXMT_OFB_IPV6_EXTHDR:    openflow.NewUint16MatchEntryDecoder(true),
	}
}
