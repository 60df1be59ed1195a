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
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// ActionDecoder decodes a single action record. Implementations must be stateless so
// that one instance can be shared by concurrent decodes on independent buffers.
type ActionDecoder interface {
	// Deserialize consumes the whole record, including the header and the padding.
	Deserialize(buf *Buffer) (Action, error)
	// DeserializeHeader consumes only the 4-byte header and returns an action whose
	// variant carries no payload.
	DeserializeHeader(buf *Buffer) (Action, error)
}

// SimpleActionDecoder is an action decoder that knows its own dispatch key.
type SimpleActionDecoder interface {
	ActionDecoder
	Version() uint8
	Type() uint16
}

// MatchEntryDecoder decodes a single OXM TLV including its header.
type MatchEntryDecoder interface {
	Deserialize(buf *Buffer) (MatchEntry, error)
}

// MatchEntryLookup resolves a match entry key to its decoder.
type MatchEntryLookup interface {
	Lookup(key MatchEntryKey) (decoder MatchEntryDecoder, ok bool)
}

// ActionLookup resolves an action key to its decoder.
type ActionLookup interface {
	Lookup(key ActionKey) (decoder ActionDecoder, ok bool)
}

// ActionRegistry maps action keys to decoders. It is safe for concurrent use.
type ActionRegistry struct {
	mutex    sync.RWMutex
	decoders map[ActionKey]ActionDecoder
}

func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		decoders: make(map[ActionKey]ActionDecoder),
	}
}

// Register adds a decoder. It returns ErrDuplicatedKey if key is already registered.
func (r *ActionRegistry) Register(key ActionKey, decoder ActionDecoder) error {
	if decoder == nil {
		return errors.Wrapf(ErrNilDecoder, "%v", key)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.decoders[key]; ok {
		return errors.Wrapf(ErrDuplicatedKey, "%v", key)
	}
	r.decoders[key] = decoder

	return nil
}

// RegisterSimple registers decoders under the keys they report.
func (r *ActionRegistry) RegisterSimple(decoders ...SimpleActionDecoder) error {
	for _, v := range decoders {
		if err := r.Register(NewActionKey(v.Version(), v.Type()), v); err != nil {
			return err
		}
	}

	return nil
}

func (r *ActionRegistry) Lookup(key ActionKey) (decoder ActionDecoder, ok bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	decoder, ok = r.decoders[key]
	return decoder, ok
}

// Keys returns the registered keys in ascending order of version, type and experimenter.
func (r *ActionRegistry) Keys() []ActionKey {
	r.mutex.RLock()
	keys := make([]ActionKey, 0, len(r.decoders))
	for k := range r.decoders {
		keys = append(keys, k)
	}
	r.mutex.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Version != keys[j].Version {
			return keys[i].Version < keys[j].Version
		}
		if keys[i].Type != keys[j].Type {
			return keys[i].Type < keys[j].Type
		}
		return keys[i].Experimenter < keys[j].Experimenter
	})

	return keys
}

// MatchEntryRegistry maps match entry keys to decoders. It is safe for concurrent use.
type MatchEntryRegistry struct {
	mutex    sync.RWMutex
	decoders map[MatchEntryKey]MatchEntryDecoder
}

func NewMatchEntryRegistry() *MatchEntryRegistry {
	return &MatchEntryRegistry{
		decoders: make(map[MatchEntryKey]MatchEntryDecoder),
	}
}

// Register adds a decoder. It returns ErrDuplicatedKey if key is already registered.
func (r *MatchEntryRegistry) Register(key MatchEntryKey, decoder MatchEntryDecoder) error {
	if decoder == nil {
		return errors.Wrapf(ErrNilDecoder, "%v", key)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.decoders[key]; ok {
		return errors.Wrapf(ErrDuplicatedKey, "%v", key)
	}
	r.decoders[key] = decoder

	return nil
}

func (r *MatchEntryRegistry) Lookup(key MatchEntryKey) (decoder MatchEntryDecoder, ok bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	decoder, ok = r.decoders[key]
	return decoder, ok
}

// Keys returns the registered keys in ascending order of version, class, experimenter and field.
func (r *MatchEntryRegistry) Keys() []MatchEntryKey {
	r.mutex.RLock()
	keys := make([]MatchEntryKey, 0, len(r.decoders))
	for k := range r.decoders {
		keys = append(keys, k)
	}
	r.mutex.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Version != keys[j].Version {
			return keys[i].Version < keys[j].Version
		}
		if keys[i].Class != keys[j].Class {
			return keys[i].Class < keys[j].Class
		}
		if keys[i].Experimenter != keys[j].Experimenter {
			return keys[i].Experimenter < keys[j].Experimenter
		}
		return keys[i].Field < keys[j].Field
	})

	return keys
}
