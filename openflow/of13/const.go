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

const (
	OFPAT_OUTPUT       = 0  /* Output to switch port. */
	OFPAT_COPY_TTL_OUT = 11 /* Copy TTL "outwards" -- from next-to-outermost to outermost */
	OFPAT_COPY_TTL_IN  = 12 /* Copy TTL "inwards" -- from outermost to next-to-outermost */
	OFPAT_SET_MPLS_TTL = 15 /* MPLS TTL */
	OFPAT_DEC_MPLS_TTL = 16 /* Decrement MPLS TTL */
	OFPAT_PUSH_VLAN    = 17 /* Push a new VLAN tag */
	OFPAT_POP_VLAN     = 18 /* Pop the outer VLAN tag */
	OFPAT_PUSH_MPLS    = 19 /* Push a new MPLS tag */
	OFPAT_POP_MPLS     = 20 /* Pop the outer MPLS tag */
	OFPAT_SET_QUEUE    = 21 /* Set queue id when outputting to a port */
	OFPAT_GROUP        = 22 /* Apply group. */
	OFPAT_SET_NW_TTL   = 23 /* IP TTL. */
	OFPAT_DEC_NW_TTL   = 24 /* Decrement IP TTL. */
	OFPAT_SET_FIELD    = 25 /* Set a header field using OXM TLV format. */
	OFPAT_PUSH_PBB     = 26 /* Push a new PBB service tag (I-TAG) */
	OFPAT_POP_PBB      = 27 /* Pop the outer PBB service tag (I-TAG) */
	OFPAT_EXPERIMENTER = 0xffff
)

/* OXM Flow match field types for OpenFlow basic class. */
const (
	OFPXMT_OFB_IN_PORT        = iota /* Switch input port. */
	OFPXMT_OFB_IN_PHY_PORT           /* Switch physical input port. */
	OFPXMT_OFB_METADATA              /* Metadata passed between tables. */
	OFPXMT_OFB_ETH_DST               /* Ethernet destination address. */
	OFPXMT_OFB_ETH_SRC               /* Ethernet source address. */
	OFPXMT_OFB_ETH_TYPE              /* Ethernet frame type. */
	OFPXMT_OFB_VLAN_VID              /* VLAN id. */
	OFPXMT_OFB_VLAN_PCP              /* VLAN priority. */
	OFPXMT_OFB_IP_DSCP               /* IP DSCP (6 bits in ToS field). */
	OFPXMT_OFB_IP_ECN                /* IP ECN (2 bits in ToS field). */
	OFPXMT_OFB_IP_PROTO              /* IP protocol. */
	OFPXMT_OFB_IPV4_SRC              /* IPv4 source address. */
	OFPXMT_OFB_IPV4_DST              /* IPv4 destination address. */
	OFPXMT_OFB_TCP_SRC               /* TCP source port. */
	OFPXMT_OFB_TCP_DST               /* TCP destination port. */
	OFPXMT_OFB_UDP_SRC               /* UDP source port. */
	OFPXMT_OFB_UDP_DST               /* UDP destination port. */
	OFPXMT_OFB_SCTP_SRC              /* SCTP source port. */
	OFPXMT_OFB_SCTP_DST              /* SCTP destination port. */
	OFPXMT_OFB_ICMPV4_TYPE           /* ICMP type. */
	OFPXMT_OFB_ICMPV4_CODE           /* ICMP code. */
	OFPXMT_OFB_ARP_OP                /* ARP opcode. */
	OFPXMT_OFB_ARP_SPA               /* ARP source IPv4 address. */
	OFPXMT_OFB_ARP_TPA               /* ARP target IPv4 address. */
	OFPXMT_OFB_ARP_SHA               /* ARP source hardware address. */
	OFPXMT_OFB_ARP_THA               /* ARP target hardware address. */
	OFPXMT_OFB_IPV6_SRC              /* IPv6 source address. */
	OFPXMT_OFB_IPV6_DST              /* IPv6 destination address. */
	OFPXMT_OFB_IPV6_FLABEL           /* IPv6 Flow Label */
	OFPXMT_OFB_ICMPV6_TYPE           /* ICMPv6 type. */
	OFPXMT_OFB_ICMPV6_CODE           /* ICMPv6 code. */
	OFPXMT_OFB_IPV6_ND_TARGET        /* Target address for ND. */
	OFPXMT_OFB_IPV6_ND_SLL           /* Source link-layer for ND. */
	OFPXMT_OFB_IPV6_ND_TLL           /* Target link-layer for ND. */
	OFPXMT_OFB_MPLS_LABEL            /* MPLS label. */
	OFPXMT_OFB_MPLS_TC               /* MPLS TC. */
	OFPXMT_OFB_MPLS_BOS              /* MPLS BoS bit. */
	OFPXMT_OFB_PBB_ISID              /* PBB I-SID. */
	OFPXMT_OFB_TUNNEL_ID             /* Logical Port Metadata. */
	OFPXMT_OFB_IPV6_EXTHDR           /* IPv6 Extension Header pseudo-field */
)
