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

package nicira

import (
	"fmt"

	"github.com/ofwire/ofdecode/openflow"

	"github.com/pkg/errors"
)

// NXAction is returned by the header-only decode, which cannot tell the subtype.
type NXAction struct{}

func (r NXAction) ActionName() string { return "nx_action" }
func (r NXAction) String() string { return "nx_action" }

type Resubmit struct {
	InPort openflow.PortNumber
}

func (r Resubmit) ActionName() string { return "resubmit" }
func (r Resubmit) String() string { return fmt.Sprintf("resubmit:%v", uint32(r.InPort)) }

type ResubmitTable struct {
	InPort openflow.PortNumber
	Table  uint8
}

func (r ResubmitTable) ActionName() string { return "resubmit_table" }
func (r ResubmitTable) String() string {
	return fmt.Sprintf("resubmit(%v,%v)", uint32(r.InPort), r.Table)
}

type SetTunnel struct {
	TunnelID uint32
}

func (r SetTunnel) ActionName() string { return "set_tunnel" }
func (r SetTunnel) String() string { return fmt.Sprintf("set_tunnel:0x%x", r.TunnelID) }

// SubtypeKey identifies a Nicira action within the vendor namespace.
type SubtypeKey struct {
	Version uint8
	Subtype uint16
}

func (r SubtypeKey) String() string {
	return fmt.Sprintf("nx_action(version=%v, vendor=0x%08x, subtype=%v)", openflow.VersionString(r.Version), NX_VENDOR_ID, r.Subtype)
}

// readNXHeader consumes the vendor ID and the subtype that follow the action header.
func readNXHeader(buf *openflow.Buffer) error {
	vendor, err := buf.ReadUint32()
	if err != nil {
		return err
	}
	if vendor != NX_VENDOR_ID {
		return errors.Errorf("unexpected vendor ID: 0x%08x", vendor)
	}

	return buf.Skip(2)
}

func newResubmitDecoder(version uint8) *openflow.CaseDecoder {
	return openflow.NewActionCaseDecoder(version, openflow.OFPAT_EXPERIMENTER, Resubmit{}, func(buf *openflow.Buffer, header openflow.ActionHeader) (openflow.ActionChoice, error) {
		if err := readNXHeader(buf); err != nil {
			return nil, err
		}
		port, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		if err := buf.Skip(4); err != nil {
			return nil, err
		}
		return Resubmit{InPort: openflow.PortNumber(port)}, nil
	})
}

func newResubmitTableDecoder(version uint8) *openflow.CaseDecoder {
	return openflow.NewActionCaseDecoder(version, openflow.OFPAT_EXPERIMENTER, ResubmitTable{}, func(buf *openflow.Buffer, header openflow.ActionHeader) (openflow.ActionChoice, error) {
		if err := readNXHeader(buf); err != nil {
			return nil, err
		}
		port, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		table, err := buf.ReadUint8()
		if err != nil {
			return nil, err
		}
		if err := buf.Skip(3); err != nil {
			return nil, err
		}
		return ResubmitTable{InPort: openflow.PortNumber(port), Table: table}, nil
	})
}

func newSetTunnelDecoder(version uint8) *openflow.CaseDecoder {
	return openflow.NewActionCaseDecoder(version, openflow.OFPAT_EXPERIMENTER, SetTunnel{}, func(buf *openflow.Buffer, header openflow.ActionHeader) (openflow.ActionChoice, error) {
		if err := readNXHeader(buf); err != nil {
			return nil, err
		}
		if err := buf.Skip(2); err != nil {
			return nil, err
		}
		id, err := buf.ReadUint32()
		if err != nil {
			return nil, err
		}
		return SetTunnel{TunnelID: id}, nil
	})
}

// ActionDecoder dispatches the Nicira vendor actions on their subtype.
type ActionDecoder struct {
	version  uint8
	subtypes map[uint16]openflow.ActionDecoder
}

func NewActionDecoder(version uint8) *ActionDecoder {
	return &ActionDecoder{
		version:  version,
		subtypes: map[uint16]openflow.ActionDecoder{
			NXAST_RESUBMIT:       newResubmitDecoder(version),
			NXAST_SET_TUNNEL:     newSetTunnelDecoder(version),
			NXAST_RESUBMIT_TABLE: newResubmitTableDecoder(version),
		},
	}
}

func (r *ActionDecoder) Key() openflow.ActionKey {
	return openflow.NewExperimenterActionKey(r.version, NX_VENDOR_ID)
}

func (r *ActionDecoder) DeserializeHeader(buf *openflow.Buffer) (openflow.Action, error) {
	if err := buf.Skip(openflow.ActionHeaderLength); err != nil {
		return openflow.Action{}, errors.Wrap(err, "failed to decode nx_action header")
	}

	return openflow.Action{Choice: NXAction{}}, nil
}

func (r *ActionDecoder) Deserialize(buf *openflow.Buffer) (openflow.Action, error) {
	subtype, err := buf.PeekUint16(openflow.ActionHeaderLength + 4)
	if err != nil {
		return openflow.Action{}, errors.Wrap(err, "failed to decode nx_action subtype")
	}
	decoder, ok := r.subtypes[subtype]
	if !ok {
		return openflow.Action{}, &openflow.UnresolvableKeyError{Key: SubtypeKey{Version: r.version, Subtype: subtype}}
	}

	return decoder.Deserialize(buf)
}
