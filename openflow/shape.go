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
	"net"

	"github.com/pkg/errors"
)

// ActionHeader is the common 4-byte header of an action record.
type ActionHeader struct {
	Type   uint16
	Length uint16
	// Offset of the first header byte in the buffer.
	Offset int
}

// ReadActionHeader reads the type and length fields of an action record.
func ReadActionHeader(buf *Buffer) (ActionHeader, error) {
	offset := buf.Pos()
	if err := buf.need(ActionHeaderLength); err != nil {
		return ActionHeader{}, err
	}
	t, _ := buf.ReadUint16()
	length, _ := buf.ReadUint16()
	if length < ActionHeaderLength || length%Alignment != 0 {
		return ActionHeader{}, errors.Wrapf(ErrInvalidActionLength, "type=%v, length=%v", t, length)
	}

	return ActionHeader{Type: t, Length: length, Offset: offset}, nil
}

// AlignmentPadding returns the number of bytes needed to align length to a multiple of 8.
func AlignmentPadding(length int) int {
	rem := length % Alignment
	if rem == 0 {
		return 0
	}

	return Alignment - rem
}

// PayloadFunc consumes the bytes following the action header, including any trailing
// padding, and returns the decoded variant.
type PayloadFunc func(buf *Buffer, header ActionHeader) (ActionChoice, error)

// CaseDecoder is the building block of all the action decoders: it reads the header,
// lets a payload function consume the rest of the record and wraps the result in an
// Action. The number of consumed bytes must match the length declared in the header.
type CaseDecoder struct {
	version uint8
	typ     uint16
	empty   ActionChoice
	payload PayloadFunc
}

// NewActionCaseDecoder returns a decoder for the action identified by version and t. empty
// is the variant returned by DeserializeHeader.
func NewActionCaseDecoder(version uint8, t uint16, empty ActionChoice, payload PayloadFunc) *CaseDecoder {
	if empty == nil || payload == nil {
		panic("nil empty action or payload function")
	}

	return &CaseDecoder{
		version: version,
		typ:     t,
		empty:   empty,
		payload: payload,
	}
}

func (r *CaseDecoder) Version() uint8 {
	return r.version
}

func (r *CaseDecoder) Type() uint16 {
	return r.typ
}

func (r *CaseDecoder) DeserializeHeader(buf *Buffer) (Action, error) {
	if err := buf.Skip(ActionHeaderLength); err != nil {
		return Action{}, errors.Wrapf(err, "failed to decode %v header", r.empty.ActionName())
	}

	return Action{Choice: r.empty}, nil
}

func (r *CaseDecoder) Deserialize(buf *Buffer) (Action, error) {
	header, err := ReadActionHeader(buf)
	if err != nil {
		return Action{}, errors.Wrapf(err, "failed to decode %v header", r.empty.ActionName())
	}
	choice, err := r.payload(buf, header)
	if err != nil {
		return Action{}, errors.Wrapf(err, "failed to decode %v", r.empty.ActionName())
	}
	if consumed := buf.Pos() - header.Offset; consumed != int(header.Length) {
		return Action{}, errors.Wrapf(ErrInvalidActionLength, "%v: declared=%v, consumed=%v", r.empty.ActionName(), header.Length, consumed)
	}

	return Action{Choice: choice}, nil
}

// NewEmptyActionDecoder returns a decoder for an action that has no payload but pad bytes.
func NewEmptyActionDecoder(version uint8, t uint16, empty ActionChoice, pad int) *CaseDecoder {
	return NewActionCaseDecoder(version, t, empty, func(buf *Buffer, header ActionHeader) (ActionChoice, error) {
		if err := buf.Skip(pad); err != nil {
			return nil, err
		}
		return empty, nil
	})
}

// NewEtherTypeActionDecoder returns a decoder for the ether type, pad layout.
func NewEtherTypeActionDecoder(version uint8, t uint16, empty ActionChoice, create func(etherType uint16) ActionChoice) *CaseDecoder {
	return NewActionCaseDecoder(version, t, empty, func(buf *Buffer, header ActionHeader) (ActionChoice, error) {
		etherType, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		if err := buf.Skip(PadEtherType); err != nil {
			return nil, err
		}
		return create(etherType), nil
	})
}

// NewDlAddressActionDecoder returns a decoder for the MAC address, pad layout.
func NewDlAddressActionDecoder(version uint8, t uint16, empty ActionChoice, create func(mac net.HardwareAddr) ActionChoice) *CaseDecoder {
	return NewActionCaseDecoder(version, t, empty, func(buf *Buffer, header ActionHeader) (ActionChoice, error) {
		mac, err := buf.ReadMAC()
		if err != nil {
			return nil, err
		}
		if err := buf.Skip(PadDlAddress); err != nil {
			return nil, err
		}
		return create(mac), nil
	})
}

// NewNwAddressActionDecoder returns a decoder for the IPv4 address layout. There is no padding.
func NewNwAddressActionDecoder(version uint8, t uint16, empty ActionChoice, create func(ip net.IP) ActionChoice) *CaseDecoder {
	return NewActionCaseDecoder(version, t, empty, func(buf *Buffer, header ActionHeader) (ActionChoice, error) {
		ip, err := buf.ReadIPv4()
		if err != nil {
			return nil, err
		}
		return create(ip), nil
	})
}

// NewTpPortActionDecoder returns a decoder for the 16-bit port, pad layout.
func NewTpPortActionDecoder(version uint8, t uint16, empty ActionChoice, create func(port PortNumber) ActionChoice) *CaseDecoder {
	return NewActionCaseDecoder(version, t, empty, func(buf *Buffer, header ActionHeader) (ActionChoice, error) {
		port, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		if err := buf.Skip(PadTpPort); err != nil {
			return nil, err
		}
		return create(PortNumber(port)), nil
	})
}

// NewUint8ActionDecoder returns a decoder for the 8-bit value, pad layout.
func NewUint8ActionDecoder(version uint8, t uint16, empty ActionChoice, pad int, create func(v uint8) ActionChoice) *CaseDecoder {
	return NewActionCaseDecoder(version, t, empty, func(buf *Buffer, header ActionHeader) (ActionChoice, error) {
		v, err := buf.ReadUint8()
		if err != nil {
			return nil, err
		}
		if err := buf.Skip(pad); err != nil {
			return nil, err
		}
		return create(v), nil
	})
}

// NewUint16ActionDecoder returns a decoder for the 16-bit value, pad layout.
func NewUint16ActionDecoder(version uint8, t uint16, empty ActionChoice, pad int, create func(v uint16) ActionChoice) *CaseDecoder {
	return NewActionCaseDecoder(version, t, empty, func(buf *Buffer, header ActionHeader) (ActionChoice, error) {
		v, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		if err := buf.Skip(pad); err != nil {
			return nil, err
		}
		return create(v), nil
	})
}

// NewUint32ActionDecoder returns a decoder for the 32-bit value layout. There is no padding.
func NewUint32ActionDecoder(version uint8, t uint16, empty ActionChoice, create func(v uint32) ActionChoice) *CaseDecoder {
	return NewActionCaseDecoder(version, t, empty, func(buf *Buffer, header ActionHeader) (ActionChoice, error) {
		v, err := buf.ReadUint32()
		if err != nil {
			return nil, err
		}
		return create(v), nil
	})
}
