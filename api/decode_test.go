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

package api

import (
	"testing"

	"github.com/ofwire/ofdecode/decoder"

	"github.com/ant0ine/go-json-rest/rest/test"
	"github.com/google/go-cmp/cmp"
)

func newTestAPI(t *testing.T) *API {
	d, registries, err := decoder.Default(decoder.Config{})
	if err != nil {
		t.Fatalf("failed to init the decoder: %v", err)
	}

	return &API{Server: Server{Decoder: d, Registry: registries}}
}

func TestDecode(t *testing.T) {
	samples := []struct {
		Payload interface{}
		Status  Status
		Actions []decodedAction
	}{
		{
			Payload: map[string]interface{}{"version": 1, "data": "0000 0008 0003 ffff"},
			Status:  StatusOkay,
			Actions: []decodedAction{{Name: "output", Text: "output:3(max_len=65535)"}},
		},
		{
			Payload: map[string]interface{}{"version": 4, "data": "0016 0008 0000 002a 0012 0008 0000 0000"},
			Status:  StatusOkay,
			Actions: []decodedAction{{Name: "group", Text: "group:42"}, {Name: "pop_vlan", Text: "pop_vlan"}},
		},
		{
			Payload: map[string]interface{}{"version": 2, "data": "0016 0008 0000 002a"},
			Status:  StatusInvalidParameter,
		},
		{
			Payload: map[string]interface{}{"version": 4, "data": "not hex"},
			Status:  StatusInvalidParameter,
		},
		{
			Payload: map[string]interface{}{"version": 4, "data": "0005 0008 0000 0000"},
			Status:  StatusUnsupported,
		},
		{
			Payload: map[string]interface{}{"version": 4, "data": "0016 0010 0000 002a"},
			Status:  StatusMalformedData,
		},
	}

	handler, err := newTestAPI(t).Handler()
	if err != nil {
		t.Fatalf("failed to make the handler: %v", err)
	}
	for _, v := range samples {
		recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("POST", "http://localhost/api/v1/decode", v.Payload))
		recorded.CodeIs(200)
		recorded.ContentTypeIsJson()

		resp := struct {
			Status  Status          `json:"status"`
			Message string          `json:"message"`
			Data    []decodedAction `json:"data"`
		}{}
		if err := recorded.DecodeJsonPayload(&resp); err != nil {
			t.Fatalf("failed to decode the response: %v", err)
		}
		if resp.Status != v.Status {
			t.Fatalf("unexpected status: expected=%v, actual=%v (%v)", v.Status, resp.Status, resp.Message)
		}
		if diff := cmp.Diff(v.Actions, resp.Data); diff != "" {
			t.Fatalf("unexpected actions: (-expected +actual)\n%v", diff)
		}
	}
}

func TestKeys(t *testing.T) {
	handler, err := newTestAPI(t).Handler()
	if err != nil {
		t.Fatalf("failed to make the handler: %v", err)
	}

	recorded := test.RunRequest(t, handler, test.MakeSimpleRequest("GET", "http://localhost/api/v1/keys", nil))
	recorded.CodeIs(200)
	recorded.HeaderIs("Access-Control-Allow-Origin", "*")

	resp := struct {
		Status Status `json:"status"`
		Data   struct {
			Actions      []string `json:"actions"`
			MatchEntries []string `json:"match_entries"`
		} `json:"data"`
	}{}
	if err := recorded.DecodeJsonPayload(&resp); err != nil {
		t.Fatalf("failed to decode the response: %v", err)
	}
	if resp.Status != StatusOkay {
		t.Fatalf("unexpected status: %v", resp.Status)
	}
	if len(resp.Data.Actions) != 30 {
		t.Fatalf("unexpected number of actions: expected=30, actual=%v", len(resp.Data.Actions))
	}
	if resp.Data.Actions[0] != "action(version=OF1.0, type=0)" {
		t.Fatalf("unexpected first action key: %v", resp.Data.Actions[0])
	}
	if len(resp.Data.MatchEntries) == 0 {
		t.Fatal("no match entry key")
	}
}

func TestServerValidate(t *testing.T) {
	s := &Server{}
	if _, err := s.Handler(); err == nil {
		t.Fatal("expected an error on the empty server")
	}
}
