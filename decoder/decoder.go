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
	"encoding/binary"
	"time"

	"github.com/ofwire/ofdecode/openflow"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var (
	logger = logging.MustGetLogger("decoder")
)

const defaultSuppressExpiration = 5 * time.Minute

type Config struct {
	// SkipUnknown makes DecodeActions skip the records that have no registered decoder
	// instead of failing the whole list.
	SkipUnknown bool
	// SuppressExpiration is the period during which a skipped action key is logged only once.
	SuppressExpiration time.Duration
}

// Decoder selects an action decoder for each record and runs it. It is safe for concurrent
// use as long as each goroutine uses its own buffer.
type Decoder struct {
	actions     openflow.ActionLookup
	skipUnknown bool
	suppressor  *suppressor
}

func New(actions openflow.ActionLookup, conf Config) *Decoder {
	if actions == nil {
		panic("nil action lookup")
	}
	expiration := conf.SuppressExpiration
	if expiration <= 0 {
		expiration = defaultSuppressExpiration
	}

	return &Decoder{
		actions:     actions,
		skipUnknown: conf.SkipUnknown,
		suppressor:  newSuppressor(expiration),
	}
}

// peekActionKey builds the dispatch key of the action at the cursor without moving it.
func peekActionKey(version uint8, buf *openflow.Buffer) (openflow.ActionKey, error) {
	t, err := buf.PeekUint16(0)
	if err != nil {
		return openflow.ActionKey{}, err
	}
	if t != openflow.OFPAT_EXPERIMENTER {
		return openflow.NewActionKey(version, t), nil
	}

	// The experimenter ID follows the 4-byte action header.
	experimenter, err := buf.PeekUint32(openflow.ActionHeaderLength)
	if err != nil {
		return openflow.ActionKey{}, err
	}

	return openflow.NewExperimenterActionKey(version, experimenter), nil
}

func (r *Decoder) lookup(version uint8, buf *openflow.Buffer) (openflow.ActionDecoder, error) {
	key, err := peekActionKey(version, buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the action type")
	}
	decoder, ok := r.actions.Lookup(key)
	if !ok {
		return nil, &openflow.UnresolvableKeyError{Key: key}
	}

	return decoder, nil
}

// DecodeAction decodes the action record at the cursor. The cursor is left at the start of
// the next record on success.
func (r *Decoder) DecodeAction(version uint8, buf *openflow.Buffer) (openflow.Action, error) {
	decoder, err := r.lookup(version, buf)
	if err != nil {
		return openflow.Action{}, err
	}

	return decoder.Deserialize(buf)
}

// DecodeActionHeader consumes only the header of the action record at the cursor.
func (r *Decoder) DecodeActionHeader(version uint8, buf *openflow.Buffer) (openflow.Action, error) {
	decoder, err := r.lookup(version, buf)
	if err != nil {
		return openflow.Action{}, err
	}

	return decoder.DeserializeHeader(buf)
}

// DecodeActions decodes a list of action records that fills data.
func (r *Decoder) DecodeActions(version uint8, data []byte) ([]openflow.Action, error) {
	result := make([]openflow.Action, 0)

	buf := data
	offset := 0
	for len(buf) > 0 {
		if len(buf) < openflow.ActionHeaderLength {
			return nil, errors.Wrapf(openflow.ErrBufferUnderrun, "truncated action header at offset %v", offset)
		}
		length := int(binary.BigEndian.Uint16(buf[2:4]))
		// Records are 8-byte aligned. A bogus length must not be used to skip an unknown record.
		if length < openflow.ActionHeaderLength || length%openflow.Alignment != 0 {
			return nil, errors.Wrapf(openflow.ErrInvalidActionLength, "length=%v at offset %v", length, offset)
		}
		if len(buf) < length {
			return nil, errors.Wrapf(openflow.ErrBufferUnderrun, "truncated action at offset %v", offset)
		}

		record := openflow.NewBuffer(buf[:length])
		action, err := r.DecodeAction(version, record)
		switch {
		case err == nil:
			if record.Len() != 0 {
				return nil, errors.Wrapf(openflow.ErrInvalidActionLength, "%v bytes left over at offset %v", record.Len(), offset)
			}
			result = append(result, action)
		case r.skipUnknown && openflow.IsUnresolvable(err):
			if r.suppressor.Allow(err.Error()) {
				logger.Warningf("skipping an unsupported action at offset %v: %v", offset, err)
			}
		default:
			return nil, errors.Wrapf(err, "failed to decode the action at offset %v", offset)
		}

		buf = buf[length:]
		offset += length
	}

	return result, nil
}

// ResetSuppression forgets all the suppressed log messages.
func (r *Decoder) ResetSuppression() {
	r.suppressor.RemoveAll()
}
