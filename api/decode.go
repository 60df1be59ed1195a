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
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ofwire/ofdecode/decoder"
	"github.com/ofwire/ofdecode/openflow"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/davecgh/go-spew/spew"
	"github.com/op/go-logging"
)

var (
	logger = logging.MustGetLogger("api")
)

type API struct {
	Server
}

func (r *API) routes() []*rest.Route {
	return []*rest.Route{
		rest.Post("/api/v1/decode", r.decode),
		rest.Get("/api/v1/keys", r.keys),
	}
}

func (r *API) Handler() (http.Handler, error) {
	return r.Server.Handler(r.routes()...)
}

func (r *API) Serve() error {
	return r.Server.Serve(r.routes()...)
}

type decodeParam struct {
	Version uint8
	Data    []byte
}

func (r *decodeParam) UnmarshalJSON(data []byte) error {
	v := struct {
		Version uint8  `json:"version"`
		Data    string `json:"data"`
	}{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if v.Version != openflow.OF10_VERSION && v.Version != openflow.OF13_VERSION {
		return fmt.Errorf("unsupported OpenFlow version: %v", v.Version)
	}
	raw, err := decoder.ParseHex(v.Data)
	if err != nil {
		return err
	}

	r.Version = v.Version
	r.Data = raw

	return nil
}

type decodedAction struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

func (r *API) decode(w rest.ResponseWriter, req *rest.Request) {
	p := new(decodeParam)
	if err := req.DecodeJsonPayload(p); err != nil {
		w.WriteJson(Response{Status: StatusInvalidParameter, Message: err.Error()})
		return
	}
	logger.Debugf("decode request from %v: %v", req.RemoteAddr, spew.Sdump(p))

	actions, err := r.Decoder.DecodeActions(p.Version, p.Data)
	if err != nil {
		logger.Infof("failed to decode actions from %v: %v", req.RemoteAddr, err)
		status := StatusMalformedData
		if openflow.IsUnresolvable(err) {
			status = StatusUnsupported
		}
		w.WriteJson(Response{Status: Status(status), Message: err.Error()})
		return
	}

	result := make([]decodedAction, len(actions))
	for i, v := range actions {
		result[i] = decodedAction{Name: v.Choice.ActionName(), Text: v.String()}
	}
	w.WriteJson(Response{Status: StatusOkay, Data: result})
}

func (r *API) keys(w rest.ResponseWriter, req *rest.Request) {
	logger.Debugf("keys request from %v", req.RemoteAddr)

	actions := r.Registry.ActionKeys()
	matches := r.Registry.MatchEntryKeys()
	result := struct {
		Actions      []string `json:"actions"`
		MatchEntries []string `json:"match_entries"`
	}{
		Actions:      make([]string, len(actions)),
		MatchEntries: make([]string, len(matches)),
	}
	for i, v := range actions {
		result.Actions[i] = v.String()
	}
	for i, v := range matches {
		result.MatchEntries[i] = v.String()
	}

	w.WriteJson(Response{Status: StatusOkay, Data: result})
}
