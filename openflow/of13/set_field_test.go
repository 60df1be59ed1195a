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
	"net"
	"testing"

	"github.com/ofwire/ofdecode/openflow"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

type matchEntries map[openflow.MatchEntryKey]openflow.MatchEntryDecoder

func (r matchEntries) Lookup(key openflow.MatchEntryKey) (openflow.MatchEntryDecoder, bool) {
	d, ok := r[key]
	return d, ok
}

func basicKey(field uint8) openflow.MatchEntryKey {
	return openflow.NewMatchEntryKey(openflow.OF13_VERSION, openflow.OFPXMC_OPENFLOW_BASIC, field)
}

// setField builds a SET_FIELD record that wraps oxm and pads it to a multiple of 8 bytes.
func setField(oxm []byte) []byte {
	length := openflow.ActionHeaderLength + len(oxm)
	length += openflow.AlignmentPadding(length)

	data := make([]byte, length)
	data[1] = OFPAT_SET_FIELD
	data[3] = byte(length)
	copy(data[openflow.ActionHeaderLength:], oxm)

	return data
}

func TestSetField(t *testing.T) {
	matches := matchEntries{
		basicKey(OFPXMT_OFB_ETH_DST):  openflow.NewMACMatchEntryDecoder(),
		basicKey(OFPXMT_OFB_IPV4_SRC): openflow.NewIPv4MatchEntryDecoder(),
		basicKey(OFPXMT_OFB_VLAN_VID): openflow.NewUint16MatchEntryDecoder(true),
		basicKey(OFPXMT_OFB_MPLS_BOS): openflow.NewRawMatchEntryDecoder(0, false),
	}
	d := NewSetFieldDecoder(matches)

	samples := []struct {
		Name   string
		Data   []byte
		Entry  openflow.MatchEntry
		Length int
	}{
		{
			Name:   "4-byte entry",
			Data:   []byte{0x00, 0x19, 0x00, 0x08, 0x80, 0x00, 0x48, 0x00},
			Entry:  openflow.MatchEntry{Class: openflow.OFPXMC_OPENFLOW_BASIC, Field: OFPXMT_OFB_MPLS_BOS, Value: openflow.RawValue{Data: []byte{}}},
			Length: 8,
		},
		{
			Name: "12-byte entry",
			Data: []byte{
				0x00, 0x19, 0x00, 0x10,
				0x80, 0x00, 0x17, 0x08, 10, 0, 0, 0, 255, 255, 255, 0,
			},
			Entry: openflow.MatchEntry{
				Class:   openflow.OFPXMC_OPENFLOW_BASIC,
				Field:   OFPXMT_OFB_IPV4_SRC,
				HasMask: true,
				Value: openflow.IPv4Value{
					Address: net.IPv4(10, 0, 0, 0).To4(),
					Mask:    net.IPMask{255, 255, 255, 0},
				},
			},
			Length: 16,
		},
		{
			Name: "10-byte entry",
			Data: []byte{
				0x00, 0x19, 0x00, 0x10,
				0x80, 0x00, 0x06, 0x06, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
				0x00, 0x00,
			},
			Entry: openflow.MatchEntry{
				Class: openflow.OFPXMC_OPENFLOW_BASIC,
				Field: OFPXMT_OFB_ETH_DST,
				Value: openflow.MACValue{Address: net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}},
			},
			Length: 16,
		},
		{
			Name: "6-byte entry",
			Data: []byte{
				0x00, 0x19, 0x00, 0x10,
				0x80, 0x00, 0x0c, 0x02, 0x10, 0x0a,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			Entry: openflow.MatchEntry{
				Class: openflow.OFPXMC_OPENFLOW_BASIC,
				Field: OFPXMT_OFB_VLAN_VID,
				Value: openflow.Uint16Value{Value: 0x100a},
			},
			Length: 16,
		},
	}

	for _, v := range samples {
		buf := openflow.NewBuffer(v.Data)
		action, err := d.Deserialize(buf)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", v.Name, err)
		}
		expected := openflow.Action{Choice: openflow.SetField{Entries: []openflow.MatchEntry{v.Entry}}}
		if diff := cmp.Diff(expected, action); diff != "" {
			t.Fatalf("%v: unexpected action: (-expected +actual)\n%v", v.Name, diff)
		}
		if buf.Pos() != v.Length {
			t.Fatalf("%v: unexpected consumed length: expected=%v, actual=%v", v.Name, v.Length, buf.Pos())
		}
	}
}

func TestSetFieldPadding(t *testing.T) {
	for width := 0; width <= 24; width++ {
		d := NewSetFieldDecoder(matchEntries{
			basicKey(OFPXMT_OFB_IPV6_SRC): openflow.NewRawMatchEntryDecoder(width, false),
		})

		oxm := make([]byte, openflow.OXMHeaderLength+width)
		oxm[0], oxm[1] = 0x80, 0x00
		oxm[2] = OFPXMT_OFB_IPV6_SRC << 1
		oxm[3] = byte(width)
		for i := 0; i < width; i++ {
			oxm[openflow.OXMHeaderLength+i] = byte(i + 1)
		}

		data := setField(oxm)
		// The smallest multiple of 8 that is not less than header + entry.
		expected := (openflow.ActionHeaderLength + len(oxm) + 7) / 8 * 8
		if len(data) != expected {
			t.Fatalf("invalid test data: width=%v, length=%v", width, len(data))
		}

		buf := openflow.NewBuffer(append(data, 0xff, 0xff, 0xff, 0xff))
		action, err := d.Deserialize(buf)
		if err != nil {
			t.Fatalf("width=%v: unexpected error: %v", width, err)
		}
		if buf.Pos() != expected {
			t.Fatalf("width=%v: unexpected consumed length: expected=%v, actual=%v", width, expected, buf.Pos())
		}
		v := action.Choice.(openflow.SetField).Entries[0].Value.(openflow.RawValue)
		if diff := cmp.Diff(oxm[openflow.OXMHeaderLength:], v.Data); diff != "" {
			t.Fatalf("width=%v: unexpected value: (-expected +actual)\n%v", width, diff)
		}
	}
}

func TestSetFieldUnresolvable(t *testing.T) {
	d := NewSetFieldDecoder(matchEntries{
		basicKey(OFPXMT_OFB_ETH_DST): openflow.NewMACMatchEntryDecoder(),
	})

	samples := []struct {
		Name string
		Data []byte
		Key  openflow.MatchEntryKey
	}{
		{
			Name: "experimenter class",
			Data: setField([]byte{0xff, 0xff, 0x02, 0x05, 0x00, 0x00, 0x23, 0x20, 0x01}),
			Key:  openflow.NewExperimenterMatchEntryKey(openflow.OF13_VERSION, 1, 0x2320),
		},
		{
			Name: "unregistered basic field",
			Data: setField([]byte{0x80, 0x00, 0x08, 0x06, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55}),
			Key:  basicKey(OFPXMT_OFB_ETH_SRC),
		},
		{
			Name: "NXM_1 class",
			Data: setField([]byte{0x00, 0x01, 0x00, 0x04, 0x00, 0x00, 0x00, 0x01}),
			Key:  openflow.NewMatchEntryKey(openflow.OF13_VERSION, openflow.OFPXMC_NXM_1, 0),
		},
	}

	for _, v := range samples {
		action, err := d.Deserialize(openflow.NewBuffer(v.Data))
		if !openflow.IsUnresolvable(err) {
			t.Fatalf("%v: expected an unresolvable key error, actual=%v", v.Name, err)
		}
		if action.Choice != nil {
			t.Fatalf("%v: valid-looking action is returned: %v", v.Name, spew.Sdump(action))
		}
		key := errors.Cause(err).(*openflow.UnresolvableKeyError).Key
		if diff := cmp.Diff(v.Key, key); diff != "" {
			t.Fatalf("%v: unexpected key: (-expected +actual)\n%v", v.Name, diff)
		}
	}
}

func TestSetFieldMalformed(t *testing.T) {
	d := NewSetFieldDecoder(matchEntries{
		basicKey(OFPXMT_OFB_ETH_DST): openflow.NewMACMatchEntryDecoder(),
	})

	samples := []struct {
		Name     string
		Data     []byte
		Expected error
	}{
		{
			// Declares 24 bytes although the entry fits in 16 bytes.
			Name: "declared length mismatch",
			Data: []byte{
				0x00, 0x19, 0x00, 0x18,
				0x80, 0x00, 0x06, 0x06, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			Expected: openflow.ErrInvalidActionLength,
		},
		{
			Name:     "truncated entry",
			Data:     []byte{0x00, 0x19, 0x00, 0x10, 0x80, 0x00, 0x06, 0x06, 0x00, 0x11},
			Expected: openflow.ErrBufferUnderrun,
		},
		{
			Name:     "missing padding",
			Data:     []byte{0x00, 0x19, 0x00, 0x10, 0x80, 0x00, 0x06, 0x06, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			Expected: openflow.ErrBufferUnderrun,
		},
		{
			Name:     "truncated OXM header",
			Data:     []byte{0x00, 0x19, 0x00, 0x08, 0x80, 0x00},
			Expected: openflow.ErrBufferUnderrun,
		},
	}

	for _, v := range samples {
		action, err := d.Deserialize(openflow.NewBuffer(v.Data))
		if errors.Cause(err) != v.Expected {
			t.Fatalf("%v: unexpected error: expected=%v, actual=%v", v.Name, v.Expected, err)
		}
		if action.Choice != nil {
			t.Fatalf("%v: partially decoded action is returned: %v", v.Name, spew.Sdump(action))
		}
	}
}

func TestRegister(t *testing.T) {
	matches := openflow.NewMatchEntryRegistry()
	if err := RegisterMatchEntries(matches); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches.Keys()) != 40 {
		t.Fatalf("unexpected number of match entries: expected=40, actual=%v", len(matches.Keys()))
	}

	actions := openflow.NewActionRegistry()
	if err := RegisterActions(actions, matches); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := actions.Lookup(openflow.NewActionKey(openflow.OF13_VERSION, OFPAT_SET_FIELD)); !ok {
		t.Fatal("SET_FIELD is not registered")
	}
	if _, ok := actions.Lookup(openflow.NewActionKey(openflow.OF10_VERSION, OFPAT_SET_FIELD)); ok {
		t.Fatal("SET_FIELD is registered for OF1.0")
	}

	// SET_FIELD through the real registry.
	data := setField([]byte{0x80, 0x00, 0x0a, 0x02, 0x88, 0xcc})
	d, _ := actions.Lookup(openflow.NewActionKey(openflow.OF13_VERSION, OFPAT_SET_FIELD))
	action, err := d.Deserialize(openflow.NewBuffer(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := action.String(); s != "set_field:0x88cc(LinkLayerDiscovery)->oxm(0x8000:5)" {
		t.Fatalf("unexpected action: %v", s)
	}
}
