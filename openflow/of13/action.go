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

// OpenFlow 1.3 widens the port number of OUTPUT to 32 bits and pads the record to 16 bytes.
func NewOutputDecoder() *openflow.CaseDecoder {
	return openflow.NewActionCaseDecoder(openflow.OF13_VERSION, OFPAT_OUTPUT, openflow.Output{}, func(buf *openflow.Buffer, header openflow.ActionHeader) (openflow.ActionChoice, error) {
		port, err := buf.ReadUint32()
		if err != nil {
			return nil, err
		}
		maxLen, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		if err := buf.Skip(openflow.PadOutput13); err != nil {
			return nil, err
		}
		return openflow.Output{Port: openflow.PortNumber(port), MaxLength: maxLen}, nil
	})
}

func NewCopyTtlOutDecoder() *openflow.CaseDecoder {
	return openflow.NewEmptyActionDecoder(openflow.OF13_VERSION, OFPAT_COPY_TTL_OUT, openflow.CopyTtlOut{}, openflow.PadEmpty)
}

func NewCopyTtlInDecoder() *openflow.CaseDecoder {
	return openflow.NewEmptyActionDecoder(openflow.OF13_VERSION, OFPAT_COPY_TTL_IN, openflow.CopyTtlIn{}, openflow.PadEmpty)
}

func NewSetMplsTtlDecoder() *openflow.CaseDecoder {
	return openflow.NewUint8ActionDecoder(openflow.OF13_VERSION, OFPAT_SET_MPLS_TTL, openflow.SetMplsTtl{}, openflow.PadTTL, func(v uint8) openflow.ActionChoice {
		return openflow.SetMplsTtl{TTL: v}
	})
}

func NewDecMplsTtlDecoder() *openflow.CaseDecoder {
	return openflow.NewEmptyActionDecoder(openflow.OF13_VERSION, OFPAT_DEC_MPLS_TTL, openflow.DecMplsTtl{}, openflow.PadEmpty)
}

func NewPushVlanDecoder() *openflow.CaseDecoder {
	return openflow.NewEtherTypeActionDecoder(openflow.OF13_VERSION, OFPAT_PUSH_VLAN, openflow.PushVlan{}, func(t uint16) openflow.ActionChoice {
		return openflow.PushVlan{EtherType: t}
	})
}

func NewPopVlanDecoder() *openflow.CaseDecoder {
	return openflow.NewEmptyActionDecoder(openflow.OF13_VERSION, OFPAT_POP_VLAN, openflow.PopVlan{}, openflow.PadEmpty)
}

func NewPushMplsDecoder() *openflow.CaseDecoder {
	return openflow.NewEtherTypeActionDecoder(openflow.OF13_VERSION, OFPAT_PUSH_MPLS, openflow.PushMpls{}, func(t uint16) openflow.ActionChoice {
		return openflow.PushMpls{EtherType: t}
	})
}

func NewPopMplsDecoder() *openflow.CaseDecoder {
	return openflow.NewEtherTypeActionDecoder(openflow.OF13_VERSION, OFPAT_POP_MPLS, openflow.PopMpls{}, func(t uint16) openflow.ActionChoice {
		return openflow.PopMpls{EtherType: t}
	})
}

func NewSetQueueDecoder() *openflow.CaseDecoder {
	return openflow.NewUint32ActionDecoder(openflow.OF13_VERSION, OFPAT_SET_QUEUE, openflow.SetQueue{}, func(v uint32) openflow.ActionChoice {
		return openflow.SetQueue{QueueID: v}
	})
}

func NewGroupDecoder() *openflow.CaseDecoder {
	return openflow.NewUint32ActionDecoder(openflow.OF13_VERSION, OFPAT_GROUP, openflow.Group{}, func(v uint32) openflow.ActionChoice {
		return openflow.Group{GroupID: v}
	})
}

func NewSetNwTtlDecoder() *openflow.CaseDecoder {
	return openflow.NewUint8ActionDecoder(openflow.OF13_VERSION, OFPAT_SET_NW_TTL, openflow.SetNwTtl{}, openflow.PadTTL, func(v uint8) openflow.ActionChoice {
		return openflow.SetNwTtl{TTL: v}
	})
}

func NewDecNwTtlDecoder() *openflow.CaseDecoder {
	return openflow.NewEmptyActionDecoder(openflow.OF13_VERSION, OFPAT_DEC_NW_TTL, openflow.DecNwTtl{}, openflow.PadEmpty)
}

func NewPushPbbDecoder() *openflow.CaseDecoder {
	return openflow.NewEtherTypeActionDecoder(openflow.OF13_VERSION, OFPAT_PUSH_PBB, openflow.PushPbb{}, func(t uint16) openflow.ActionChoice {
		return openflow.PushPbb{EtherType: t}
	})
}

func NewPopPbbDecoder() *openflow.CaseDecoder {
	return openflow.NewEmptyActionDecoder(openflow.OF13_VERSION, OFPAT_POP_PBB, openflow.PopPbb{}, openflow.PadEmpty)
}
