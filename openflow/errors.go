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
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrBufferUnderrun      = errors.New("buffer underrun")
	ErrInvalidActionLength = errors.New("invalid action length")
	ErrInvalidMatchLength  = errors.New("invalid match entry length")
	ErrDuplicatedKey       = errors.New("duplicated dispatch key")
	ErrNilDecoder          = errors.New("nil decoder")
	ErrNegativeLength      = errors.New("negative length")
)

// UnresolvableKeyError means that no decoder is registered for a dispatch key.
// This is an unsupported extension, not a malformed input.
type UnresolvableKeyError struct {
	Key fmt.Stringer
}

func (r *UnresolvableKeyError) Error() string {
	return fmt.Sprintf("unresolvable dispatch key: %v", r.Key)
}

// IsUnresolvable returns true if the cause of err is an UnresolvableKeyError.
func IsUnresolvable(err error) bool {
	if err == nil {
		return false
	}
	_, ok := errors.Cause(err).(*UnresolvableKeyError)

	return ok
}

// IsUnderrun returns true if the cause of err is ErrBufferUnderrun.
func IsUnderrun(err error) bool {
	return err != nil && errors.Cause(err) == ErrBufferUnderrun
}
