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

package of10

import (
	"github.com/ofwire/ofdecode/openflow"

	"github.com/pkg/errors"
)

// Decoders returns all the OpenFlow 1.0 action decoders.
func Decoders() []openflow.SimpleActionDecoder {
	return []openflow.SimpleActionDecoder{
		NewOutputDecoder(),
		NewSetVlanVidDecoder(),
		NewSetVlanPcpDecoder(),
		NewStripVlanDecoder(),
		NewSetDlSrcDecoder(),
		NewSetDlDstDecoder(),
		NewSetNwSrcDecoder(),
		NewSetNwDstDecoder(),
		NewSetNwTosDecoder(),
		NewSetTpSrcDecoder(),
		NewSetTpDstDecoder(),
		NewEnqueueDecoder(),
	}
}

func RegisterActions(r *openflow.ActionRegistry) error {
	if err := r.RegisterSimple(Decoders()...); err != nil {
		return errors.Wrap(err, "failed to register OF1.0 actions")
	}

	return nil
}
