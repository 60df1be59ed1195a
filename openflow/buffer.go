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
	"encoding/binary"
	"net"

	"github.com/pkg/errors"
)

// Buffer is a read cursor over an in-memory byte slice. All multi-byte values are
// read in network byte order. A Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
	pos  int
}

func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Pos returns the absolute offset of the cursor.
func (r *Buffer) Pos() int {
	return r.pos
}

// Len returns the number of unread bytes.
func (r *Buffer) Len() int {
	return len(r.data) - r.pos
}

// Bytes returns the unread bytes without copying them.
func (r *Buffer) Bytes() []byte {
	return r.data[r.pos:]
}

func (r *Buffer) need(n int) error {
	if n < 0 {
		return ErrNegativeLength
	}
	if r.Len() < n {
		return errors.Wrapf(ErrBufferUnderrun, "need %v bytes at offset %v, but %v bytes remain", n, r.pos, r.Len())
	}

	return nil
}

// Skip advances the cursor by n bytes.
func (r *Buffer) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n

	return nil
}

func (r *Buffer) ReadUint8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++

	return v, nil
}

func (r *Buffer) ReadUint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.data[r.pos : r.pos+2])
	r.pos += 2

	return v, nil
}

func (r *Buffer) ReadUint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4

	return v, nil
}

func (r *Buffer) ReadUint48() (uint64, error) {
	if err := r.need(6); err != nil {
		return 0, err
	}
	var v uint64
	for _, b := range r.data[r.pos : r.pos+6] {
		v = v<<8 | uint64(b)
	}
	r.pos += 6

	return v, nil
}

func (r *Buffer) ReadUint64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8

	return v, nil
}

// ReadBytes returns a copy of the next n bytes.
func (r *Buffer) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := make([]byte, n)
	copy(v, r.data[r.pos:r.pos+n])
	r.pos += n

	return v, nil
}

func (r *Buffer) ReadMAC() (net.HardwareAddr, error) {
	v, err := r.ReadBytes(6)
	if err != nil {
		return nil, err
	}

	return net.HardwareAddr(v), nil
}

func (r *Buffer) ReadIPv4() (net.IP, error) {
	if err := r.need(4); err != nil {
		return nil, err
	}
	v := net.IPv4(r.data[r.pos], r.data[r.pos+1], r.data[r.pos+2], r.data[r.pos+3]).To4()
	r.pos += 4

	return v, nil
}

// PeekAt returns n bytes starting at the absolute offset without moving the cursor.
func (r *Buffer) PeekAt(offset, n int) ([]byte, error) {
	if offset < 0 || n < 0 {
		return nil, ErrNegativeLength
	}
	if offset+n > len(r.data) {
		return nil, errors.Wrapf(ErrBufferUnderrun, "need %v bytes at offset %v, but the buffer is %v bytes long", n, offset, len(r.data))
	}

	return r.data[offset : offset+n], nil
}

// PeekUint8 reads a byte located offset bytes after the cursor without moving it.
func (r *Buffer) PeekUint8(offset int) (uint8, error) {
	v, err := r.PeekAt(r.pos+offset, 1)
	if err != nil {
		return 0, err
	}

	return v[0], nil
}

// PeekUint16 reads a 16-bit value located offset bytes after the cursor without moving it.
func (r *Buffer) PeekUint16(offset int) (uint16, error) {
	v, err := r.PeekAt(r.pos+offset, 2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(v), nil
}

// PeekUint32 reads a 32-bit value located offset bytes after the cursor without moving it.
func (r *Buffer) PeekUint32(offset int) (uint32, error) {
	v, err := r.PeekAt(r.pos+offset, 4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(v), nil
}
