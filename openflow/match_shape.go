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

// MatchValueFunc reads the value of a match entry, and its mask if hasMask is true.
type MatchValueFunc func(buf *Buffer, hasMask bool) (MatchValue, error)

// EntryDecoder decodes an OXM TLV whose value has a fixed width.
type EntryDecoder struct {
	width    int
	maskable bool
	value    MatchValueFunc
}

func NewMatchEntryDecoder(width int, maskable bool, value MatchValueFunc) *EntryDecoder {
	if width < 0 || value == nil {
		panic("invalid match entry width or nil value function")
	}

	return &EntryDecoder{
		width:    width,
		maskable: maskable,
		value:    value,
	}
}

func (r *EntryDecoder) Deserialize(buf *Buffer) (MatchEntry, error) {
	header, err := ReadOXMHeader(buf)
	if err != nil {
		return MatchEntry{}, err
	}

	expected := r.width
	if header.HasMask {
		if !r.maskable {
			return MatchEntry{}, errors.Wrapf(ErrInvalidMatchLength, "class=0x%04x, field=%v: unexpected mask", header.Class, header.Field)
		}
		expected *= 2
	}
	var experimenter uint32
	if header.Class == OFPXMC_EXPERIMENTER {
		expected += OXMExperimenterLength
		if experimenter, err = buf.ReadUint32(); err != nil {
			return MatchEntry{}, err
		}
	}
	if int(header.Length) != expected {
		return MatchEntry{}, errors.Wrapf(ErrInvalidMatchLength, "class=0x%04x, field=%v: declared=%v, expected=%v", header.Class, header.Field, header.Length, expected)
	}

	v, err := r.value(buf, header.HasMask)
	if err != nil {
		return MatchEntry{}, err
	}

	return MatchEntry{
		Class:        header.Class,
		Field:        header.Field,
		HasMask:      header.HasMask,
		Experimenter: experimenter,
		Value:        v,
	}, nil
}

func NewPortMatchEntryDecoder() *EntryDecoder {
	return NewMatchEntryDecoder(4, false, func(buf *Buffer, hasMask bool) (MatchValue, error) {
		port, err := buf.ReadUint32()
		if err != nil {
			return nil, err
		}
		return PortValue{Port: PortNumber(port)}, nil
	})
}

func NewMACMatchEntryDecoder() *EntryDecoder {
	return NewMatchEntryDecoder(6, true, func(buf *Buffer, hasMask bool) (MatchValue, error) {
		v := MACValue{}
		var err error
		if v.Address, err = buf.ReadMAC(); err != nil {
			return nil, err
		}
		if hasMask {
			if v.Mask, err = buf.ReadMAC(); err != nil {
				return nil, err
			}
		}
		return v, nil
	})
}

func NewIPv4MatchEntryDecoder() *EntryDecoder {
	return NewMatchEntryDecoder(4, true, func(buf *Buffer, hasMask bool) (MatchValue, error) {
		v := IPv4Value{}
		var err error
		if v.Address, err = buf.ReadIPv4(); err != nil {
			return nil, err
		}
		if hasMask {
			mask, err := buf.ReadIPv4()
			if err != nil {
				return nil, err
			}
			v.Mask = net.IPMask(mask)
		}
		return v, nil
	})
}

func NewEtherTypeMatchEntryDecoder() *EntryDecoder {
	return NewMatchEntryDecoder(2, false, func(buf *Buffer, hasMask bool) (MatchValue, error) {
		t, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		return EtherTypeValue{Type: t}, nil
	})
}

func NewUint8MatchEntryDecoder(maskable bool) *EntryDecoder {
	return NewMatchEntryDecoder(1, maskable, func(buf *Buffer, hasMask bool) (MatchValue, error) {
		v := Uint8Value{}
		var err error
		if v.Value, err = buf.ReadUint8(); err != nil {
			return nil, err
		}
		if hasMask {
			if v.Mask, err = buf.ReadUint8(); err != nil {
				return nil, err
			}
		}
		return v, nil
	})
}

func NewUint16MatchEntryDecoder(maskable bool) *EntryDecoder {
	return NewMatchEntryDecoder(2, maskable, func(buf *Buffer, hasMask bool) (MatchValue, error) {
		v := Uint16Value{}
		var err error
		if v.Value, err = buf.ReadUint16(); err != nil {
			return nil, err
		}
		if hasMask {
			if v.Mask, err = buf.ReadUint16(); err != nil {
				return nil, err
			}
		}
		return v, nil
	})
}

func NewUint32MatchEntryDecoder(maskable bool) *EntryDecoder {
	return NewMatchEntryDecoder(4, maskable, func(buf *Buffer, hasMask bool) (MatchValue, error) {
		v := Uint32Value{}
		var err error
		if v.Value, err = buf.ReadUint32(); err != nil {
			return nil, err
		}
		if hasMask {
			if v.Mask, err = buf.ReadUint32(); err != nil {
				return nil, err
			}
		}
		return v, nil
	})
}

func NewUint64MatchEntryDecoder(maskable bool) *EntryDecoder {
	return NewMatchEntryDecoder(8, maskable, func(buf *Buffer, hasMask bool) (MatchValue, error) {
		v := Uint64Value{}
		var err error
		if v.Value, err = buf.ReadUint64(); err != nil {
			return nil, err
		}
		if hasMask {
			if v.Mask, err = buf.ReadUint64(); err != nil {
				return nil, err
			}
		}
		return v, nil
	})
}

// NewRawMatchEntryDecoder returns a decoder that keeps width bytes of value as they are.
func NewRawMatchEntryDecoder(width int, maskable bool) *EntryDecoder {
	return NewMatchEntryDecoder(width, maskable, func(buf *Buffer, hasMask bool) (MatchValue, error) {
		v := RawValue{}
		var err error
		if v.Data, err = buf.ReadBytes(width); err != nil {
			return nil, err
		}
		if hasMask {
			if v.Mask, err = buf.ReadBytes(width); err != nil {
				return nil, err
			}
		}
		return v, nil
	})
}
