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
	"net"
	"strings"

	"github.com/google/gopacket/layers"
)

// ActionChoice is one variant of the action union. Exactly one variant is held by an Action.
type ActionChoice interface {
	fmt.Stringer
	// ActionName returns the short name of the action, e.g., "output".
	ActionName() string
}

// Action is the envelope of a decoded action record. It is immutable once it is returned
// from a decoder.
type Action struct {
	Choice ActionChoice
}

func (r Action) String() string {
	if r.Choice == nil {
		return "<nil>"
	}

	return r.Choice.String()
}

func etherTypeString(t uint16) string {
	return fmt.Sprintf("0x%04x(%v)", t, layers.EthernetType(t))
}

type Output struct {
	Port      PortNumber
	MaxLength uint16
}

func (r Output) ActionName() string { return "output" }
func (r Output) String() string {
	return fmt.Sprintf("output:%v(max_len=%v)", r.Port, r.MaxLength)
}

type Enqueue struct {
	Port    PortNumber
	QueueID uint32
}

func (r Enqueue) ActionName() string { return "enqueue" }
func (r Enqueue) String() string {
	return fmt.Sprintf("enqueue:%v:%v", r.Port, r.QueueID)
}

type SetVlanVid struct {
	VlanVid uint16
}

func (r SetVlanVid) ActionName() string { return "set_vlan_vid" }
func (r SetVlanVid) String() string { return fmt.Sprintf("mod_vlan_vid:%v", r.VlanVid) }

type SetVlanPcp struct {
	VlanPcp uint8
}

func (r SetVlanPcp) ActionName() string { return "set_vlan_pcp" }
func (r SetVlanPcp) String() string { return fmt.Sprintf("mod_vlan_pcp:%v", r.VlanPcp) }

type StripVlan struct{}

func (r StripVlan) ActionName() string { return "strip_vlan" }
func (r StripVlan) String() string { return "strip_vlan" }

type SetDlSrc struct {
	Address net.HardwareAddr
}

func (r SetDlSrc) ActionName() string { return "set_dl_src" }
func (r SetDlSrc) String() string { return fmt.Sprintf("mod_dl_src:%v", r.Address) }

type SetDlDst struct {
	Address net.HardwareAddr
}

func (r SetDlDst) ActionName() string { return "set_dl_dst" }
func (r SetDlDst) String() string { return fmt.Sprintf("mod_dl_dst:%v", r.Address) }

type SetNwSrc struct {
	Address net.IP
}

func (r SetNwSrc) ActionName() string { return "set_nw_src" }
func (r SetNwSrc) String() string { return fmt.Sprintf("mod_nw_src:%v", r.Address) }

type SetNwDst struct {
	Address net.IP
}

func (r SetNwDst) ActionName() string { return "set_nw_dst" }
func (r SetNwDst) String() string { return fmt.Sprintf("mod_nw_dst:%v", r.Address) }

type SetNwTos struct {
	Tos uint8
}

func (r SetNwTos) ActionName() string { return "set_nw_tos" }
func (r SetNwTos) String() string { return fmt.Sprintf("mod_nw_tos:%v", r.Tos) }

type SetTpSrc struct {
	Port PortNumber
}

func (r SetTpSrc) ActionName() string { return "set_tp_src" }
func (r SetTpSrc) String() string { return fmt.Sprintf("mod_tp_src:%v", uint32(r.Port)) }

type SetTpDst struct {
	Port PortNumber
}

func (r SetTpDst) ActionName() string { return "set_tp_dst" }
func (r SetTpDst) String() string { return fmt.Sprintf("mod_tp_dst:%v", uint32(r.Port)) }

type CopyTtlOut struct{}

func (r CopyTtlOut) ActionName() string { return "copy_ttl_out" }
func (r CopyTtlOut) String() string { return "copy_ttl_out" }

type CopyTtlIn struct{}

func (r CopyTtlIn) ActionName() string { return "copy_ttl_in" }
func (r CopyTtlIn) String() string { return "copy_ttl_in" }

type SetMplsTtl struct {
	TTL uint8
}

func (r SetMplsTtl) ActionName() string { return "set_mpls_ttl" }
func (r SetMplsTtl) String() string { return fmt.Sprintf("set_mpls_ttl(%v)", r.TTL) }

type DecMplsTtl struct{}

func (r DecMplsTtl) ActionName() string { return "dec_mpls_ttl" }
func (r DecMplsTtl) String() string { return "dec_mpls_ttl" }

type PushVlan struct {
	EtherType uint16
}

func (r PushVlan) ActionName() string { return "push_vlan" }
func (r PushVlan) String() string { return "push_vlan:" + etherTypeString(r.EtherType) }

type PopVlan struct{}

func (r PopVlan) ActionName() string { return "pop_vlan" }
func (r PopVlan) String() string { return "pop_vlan" }

type PushMpls struct {
	EtherType uint16
}

func (r PushMpls) ActionName() string { return "push_mpls" }
func (r PushMpls) String() string { return "push_mpls:" + etherTypeString(r.EtherType) }

type PopMpls struct {
	EtherType uint16
}

func (r PopMpls) ActionName() string { return "pop_mpls" }
func (r PopMpls) String() string { return "pop_mpls:" + etherTypeString(r.EtherType) }

type SetQueue struct {
	QueueID uint32
}

func (r SetQueue) ActionName() string { return "set_queue" }
func (r SetQueue) String() string { return fmt.Sprintf("set_queue:%v", r.QueueID) }

type Group struct {
	GroupID uint32
}

func (r Group) ActionName() string { return "group" }
func (r Group) String() string { return fmt.Sprintf("group:%v", r.GroupID) }

type SetNwTtl struct {
	TTL uint8
}

func (r SetNwTtl) ActionName() string { return "set_nw_ttl" }
func (r SetNwTtl) String() string { return fmt.Sprintf("mod_nw_ttl:%v", r.TTL) }

type DecNwTtl struct{}

func (r DecNwTtl) ActionName() string { return "dec_nw_ttl" }
func (r DecNwTtl) String() string { return "dec_ttl" }

// SetField holds the match entries decoded from an OFPAT_SET_FIELD record. The wire format
// carries a single entry; it is kept as a list.
type SetField struct {
	Entries []MatchEntry
}

func (r SetField) ActionName() string { return "set_field" }
func (r SetField) String() string {
	v := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		v[i] = e.String()
	}

	return fmt.Sprintf("set_field:%v", strings.Join(v, ","))
}

type PushPbb struct {
	EtherType uint16
}

func (r PushPbb) ActionName() string { return "push_pbb" }
func (r PushPbb) String() string { return "push_pbb:" + etherTypeString(r.EtherType) }

type PopPbb struct{}

func (r PopPbb) ActionName() string { return "pop_pbb" }
func (r PopPbb) String() string { return "pop_pbb" }
