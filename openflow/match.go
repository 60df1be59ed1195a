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
	"encoding/hex"
	"fmt"
	"net"
)

// MatchEntry is a single OXM TLV.
type MatchEntry struct {
	Class   uint16
	Field   uint8
	HasMask bool
	// Experimenter is meaningful only if Class is OFPXMC_EXPERIMENTER.
	Experimenter uint32
	Value        MatchValue
}

func (r MatchEntry) String() string {
	if r.Class == OFPXMC_EXPERIMENTER {
		return fmt.Sprintf("%v->oxm(0x%04x:0x%08x:%v)", r.Value, r.Class, r.Experimenter, r.Field)
	}

	return fmt.Sprintf("%v->oxm(0x%04x:%v)", r.Value, r.Class, r.Field)
}

// MatchValue is the payload of a match entry. Mask fields are set only if the entry has a mask.
type MatchValue interface {
	fmt.Stringer
}

type PortValue struct {
	Port PortNumber
}

func (r PortValue) String() string {
	return r.Port.String()
}

type MACValue struct {
	Address net.HardwareAddr
	Mask    net.HardwareAddr
}

func (r MACValue) String() string {
	if r.Mask == nil {
		return r.Address.String()
	}

	return fmt.Sprintf("%v/%v", r.Address, r.Mask)
}

type IPv4Value struct {
	Address net.IP
	Mask    net.IPMask
}

func (r IPv4Value) String() string {
	if r.Mask == nil {
		return r.Address.String()
	}

	return fmt.Sprintf("%v/%v", r.Address, net.IP(r.Mask))
}

type EtherTypeValue struct {
	Type uint16
}

func (r EtherTypeValue) String() string {
	return etherTypeString(r.Type)
}

type Uint8Value struct {
	Value uint8
	Mask  uint8
}

func (r Uint8Value) String() string {
	return maskedString(uint64(r.Value), uint64(r.Mask))
}

type Uint16Value struct {
	Value uint16
	Mask  uint16
}

func (r Uint16Value) String() string {
	return maskedString(uint64(r.Value), uint64(r.Mask))
}

type Uint32Value struct {
	Value uint32
	Mask  uint32
}

func (r Uint32Value) String() string {
	return maskedString(uint64(r.Value), uint64(r.Mask))
}

type Uint64Value struct {
	Value uint64
	Mask  uint64
}

func (r Uint64Value) String() string {
	return maskedString(r.Value, r.Mask)
}

// RawValue keeps the bytes of a field whose layout is not interpreted.
type RawValue struct {
	Data []byte
	Mask []byte
}

func (r RawValue) String() string {
	if r.Mask == nil {
		return "0x" + hex.EncodeToString(r.Data)
	}

	return fmt.Sprintf("0x%v/0x%v", hex.EncodeToString(r.Data), hex.EncodeToString(r.Mask))
}

func maskedString(v, mask uint64) string {
	if mask == 0 {
		return fmt.Sprintf("%v", v)
	}

	return fmt.Sprintf("0x%x/0x%x", v, mask)
}

// OXMField extracts the field ID from the third byte of an OXM header.
func OXMField(b uint8) uint8 {
	return b >> 1
}

// OXMHasMask extracts the has-mask bit from the third byte of an OXM header.
func OXMHasMask(b uint8) bool {
	return b&0x1 == 1
}

// OXMHeader is the decoded 4-byte header of a match entry.
type OXMHeader struct {
	Class   uint16
	Field   uint8
	HasMask bool
	// Length of the payload following the 4-byte header, which includes the experimenter
	// ID for the experimenter class.
	Length uint8
}

// ReadOXMHeader reads the 4-byte OXM header.
func ReadOXMHeader(buf *Buffer) (OXMHeader, error) {
	if err := buf.need(OXMHeaderLength); err != nil {
		return OXMHeader{}, err
	}
	class, _ := buf.ReadUint16()
	b, _ := buf.ReadUint8()
	length, _ := buf.ReadUint8()

	return OXMHeader{
		Class:   class,
		Field:   OXMField(b),
		HasMask: OXMHasMask(b),
		Length:  length,
	}, nil
}
