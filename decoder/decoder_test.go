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

package decoder

import (
	"testing"
	"time"

	"github.com/ofwire/ofdecode/openflow"
	"github.com/ofwire/ofdecode/openflow/nicira"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func mustDefault(t *testing.T, conf Config) *Decoder {
	d, _, err := Default(conf)
	if err != nil {
		t.Fatalf("failed to init the default decoder: %v", err)
	}

	return d
}

func actionStrings(actions []openflow.Action) []string {
	v := make([]string, len(actions))
	for i, a := range actions {
		v[i] = a.String()
	}

	return v
}

func TestDecodeActions(t *testing.T) {
	samples := []struct {
		Name     string
		Version  uint8
		Hex      string
		Expected []string
	}{
		{
			Name:     "OF1.0 output",
			Version:  openflow.OF10_VERSION,
			Hex:      "0000 0008 0003 ffff",
			Expected: []string{"output:3(max_len=65535)"},
		},
		{
			Name:    "OF1.0 list",
			Version: openflow.OF10_VERSION,
			Hex: "0001 0008 0005 0000" +
				"0007 0008 0a00 0001" +
				"ffff 0010 0000 2320 0001 0002 0000 0000" +
				"0000 0008 fffb 0000",
			Expected: []string{"mod_vlan_vid:5", "mod_nw_dst:10.0.0.1", "resubmit:2", "output:65531(max_len=0)"},
		},
		{
			Name:    "OF1.3 list",
			Version: openflow.OF13_VERSION,
			Hex: "0019 0010 8000 0606 0011 2233 4455 0000" +
				"0016 0008 0000 002a" +
				"0000 0010 ffff fffa 0000 0000 0000 0000",
			Expected: []string{"set_field:00:11:22:33:44:55->oxm(0x8000:3)", "group:42", "output:NORMAL(max_len=0)"},
		},
		{
			Name:     "empty",
			Version:  openflow.OF13_VERSION,
			Hex:      "",
			Expected: []string{},
		},
	}

	d := mustDefault(t, Config{})
	for _, v := range samples {
		data, err := ParseHex(v.Hex)
		if err != nil {
			t.Fatalf("%v: invalid test data: %v", v.Name, err)
		}
		actions, err := d.DecodeActions(v.Version, data)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", v.Name, err)
		}
		if diff := cmp.Diff(v.Expected, actionStrings(actions)); diff != "" {
			t.Fatalf("%v: unexpected actions: (-expected +actual)\n%v", v.Name, diff)
		}
	}
}

func TestDecodeActionsFailure(t *testing.T) {
	samples := []struct {
		Name        string
		Version     uint8
		Hex         string
		Unsupported bool
		Cause       error
	}{
		{
			Name:        "unknown type",
			Version:     openflow.OF13_VERSION,
			Hex:         "0005 0008 0000 0000",
			Unsupported: true,
		},
		{
			Name:        "OF1.3 action in OF1.0",
			Version:     openflow.OF10_VERSION,
			Hex:         "0016 0008 0000 002a",
			Unsupported: true,
		},
		{
			Name:        "unknown experimenter",
			Version:     openflow.OF13_VERSION,
			Hex:         "ffff 0010 0000 1234 0001 0002 0000 0000",
			Unsupported: true,
		},
		{
			Name:        "unknown Nicira subtype",
			Version:     openflow.OF13_VERSION,
			Hex:         "ffff 0010 0000 2320 00ff 0000 0000 0000",
			Unsupported: true,
		},
		{
			Name:    "truncated header",
			Version: openflow.OF13_VERSION,
			Hex:     "0016 0008 0000 002a 0016",
			Cause:   openflow.ErrBufferUnderrun,
		},
		{
			Name:    "truncated record",
			Version: openflow.OF13_VERSION,
			Hex:     "0016 0010 0000 002a",
			Cause:   openflow.ErrBufferUnderrun,
		},
		{
			Name:    "zero length",
			Version: openflow.OF13_VERSION,
			Hex:     "0016 0000 0000 002a",
			Cause:   openflow.ErrInvalidActionLength,
		},
		{
			Name:    "oversized record",
			Version: openflow.OF13_VERSION,
			Hex:     "0016 0010 0000 002a 0000 0000 0000 0000",
			Cause:   openflow.ErrInvalidActionLength,
		},
	}

	d := mustDefault(t, Config{})
	for _, v := range samples {
		data, err := ParseHex(v.Hex)
		if err != nil {
			t.Fatalf("%v: invalid test data: %v", v.Name, err)
		}
		actions, err := d.DecodeActions(v.Version, data)
		if err == nil {
			t.Fatalf("%v: expected an error, actual=%v", v.Name, spew.Sdump(actions))
		}
		if openflow.IsUnresolvable(err) != v.Unsupported {
			t.Fatalf("%v: unexpected error: %v", v.Name, err)
		}
		if v.Cause != nil && errors.Cause(err) != v.Cause {
			t.Fatalf("%v: unexpected error: expected=%v, actual=%v", v.Name, v.Cause, err)
		}
	}
}

func TestDecodeActionsSkipUnknown(t *testing.T) {
	d := mustDefault(t, Config{SkipUnknown: true, SuppressExpiration: time.Hour})

	data, err := ParseHex(
		"0005 0008 0000 0000" +
			"0016 0008 0000 002a" +
			"ffff 0010 0000 1234 0001 0002 0000 0000" +
			"0005 0008 0000 0000" +
			"0012 0008 0000 0000",
	)
	if err != nil {
		t.Fatalf("invalid test data: %v", err)
	}
	actions, err := d.DecodeActions(openflow.OF13_VERSION, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"group:42", "pop_vlan"}, actionStrings(actions)); diff != "" {
		t.Fatalf("unexpected actions: (-expected +actual)\n%v", diff)
	}

	// Malformed records are never skipped.
	data, err = ParseHex("0005 0008 0000 0000 0016 0010 0000 002a")
	if err != nil {
		t.Fatalf("invalid test data: %v", err)
	}
	if _, err := d.DecodeActions(openflow.OF13_VERSION, data); !openflow.IsUnderrun(err) {
		t.Fatalf("expected buffer underrun, actual=%v", err)
	}

	// An unknown record with an unaligned length must not be skipped by that length.
	samples := []struct {
		Version uint8
		Hex     string
	}{
		{openflow.OF10_VERSION, "00fe 0005 00 0000 0008 0003 ffff"},
		{openflow.OF13_VERSION, "00fe 000c 0000 0000 0000 0000 0016 0008 0000 002a"},
		{openflow.OF13_VERSION, "ffff 000c 0000 1234 0000 0000 0016 0008 0000 002a"},
	}
	for _, v := range samples {
		data, err := ParseHex(v.Hex)
		if err != nil {
			t.Fatalf("invalid test data: %v", err)
		}
		actions, err := d.DecodeActions(v.Version, data)
		if errors.Cause(err) != openflow.ErrInvalidActionLength {
			t.Fatalf("unexpected error: data=%v, expected=%v, actual=%v (%v)", v.Hex, openflow.ErrInvalidActionLength, err, spew.Sdump(actions))
		}
	}
}

func TestResetSuppression(t *testing.T) {
	d := mustDefault(t, Config{SkipUnknown: true, SuppressExpiration: time.Hour})
	data, err := ParseHex("0005 0008 0000 0000")
	if err != nil {
		t.Fatalf("invalid test data: %v", err)
	}
	if _, err := d.DecodeActions(openflow.OF13_VERSION, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key := (&openflow.UnresolvableKeyError{Key: openflow.NewActionKey(openflow.OF13_VERSION, 5)}).Error()
	if d.suppressor.Allow(key) {
		t.Fatal("skipped key is not suppressed")
	}
	d.ResetSuppression()
	if !d.suppressor.Allow(key) {
		t.Fatal("skipped key is still suppressed after the reset")
	}
}

func TestDecodeAction(t *testing.T) {
	d := mustDefault(t, Config{})
	data, err := ParseHex("ffff 0010 0000 2320 0002 0000 0000 0001 0016 0008 0000 002a")
	if err != nil {
		t.Fatalf("invalid test data: %v", err)
	}

	buf := openflow.NewBuffer(data)
	action, err := d.DecodeAction(openflow.OF13_VERSION, buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(openflow.Action{Choice: nicira.SetTunnel{TunnelID: 1}}, action); diff != "" {
		t.Fatalf("unexpected action: (-expected +actual)\n%v", diff)
	}
	if buf.Pos() != 16 {
		t.Fatalf("cursor is not at the next record: %v", buf.Pos())
	}

	header, err := d.DecodeActionHeader(openflow.OF13_VERSION, buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(openflow.Action{Choice: openflow.Group{}}, header); diff != "" {
		t.Fatalf("unexpected action: (-expected +actual)\n%v", diff)
	}
	if buf.Pos() != 20 {
		t.Fatalf("unexpected cursor after the header: %v", buf.Pos())
	}
}

func TestSuppressor(t *testing.T) {
	s := newSuppressor(50 * time.Millisecond)
	if !s.Allow("a") {
		t.Fatal("first message is suppressed")
	}
	if s.Allow("a") {
		t.Fatal("repeated message is not suppressed")
	}
	if !s.Allow("b") {
		t.Fatal("another message is suppressed")
	}

	time.Sleep(100 * time.Millisecond)
	if !s.Allow("a") {
		t.Fatal("message is suppressed after the expiration")
	}

	s.RemoveAll()
	if !s.Allow("a") {
		t.Fatal("message is suppressed after RemoveAll")
	}
}

func TestParseHex(t *testing.T) {
	samples := []struct {
		Input    string
		Expected []byte
		Error    bool
	}{
		{"00190010", []byte{0x00, 0x19, 0x00, 0x10}, false},
		{"0x0019 0010", []byte{0x00, 0x19, 0x00, 0x10}, false},
		{"00:19:00:10\n", []byte{0x00, 0x19, 0x00, 0x10}, false},
		{"", []byte{}, false},
		{"001", nil, true},
		{"zz", nil, true},
	}

	for _, v := range samples {
		data, err := ParseHex(v.Input)
		if v.Error {
			if err == nil {
				t.Fatalf("expected an error: input=%q", v.Input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error: input=%q, err=%v", v.Input, err)
		}
		if diff := cmp.Diff(v.Expected, data); diff != "" {
			t.Fatalf("unexpected data: (-expected +actual)\n%v", diff)
		}
	}
}

func TestRegistries(t *testing.T) {
	r, err := NewRegistries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 12 OF1.0 actions + 16 OF1.3 actions + Nicira vendor action for both versions.
	if n := len(r.ActionKeys()); n != 30 {
		t.Fatalf("unexpected number of actions: expected=30, actual=%v", n)
	}
	if len(r.MatchEntryKeys()) == 0 {
		t.Fatal("no match entry is registered")
	}
}
