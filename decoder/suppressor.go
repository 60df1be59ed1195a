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
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// suppressor remembers when a message was logged last so that a flood of the same
// unsupported action does not flood the log.
type suppressor struct {
	cache      *lru.Cache
	expiration time.Duration
}

func newSuppressor(expiration time.Duration) *suppressor {
	c, err := lru.New(1024)
	if err != nil {
		panic(fmt.Sprintf("failed to init a LRU suppressor cache: %v", err))
	}

	return &suppressor{
		cache:      c,
		expiration: expiration,
	}
}

// Allow returns true if key has not been allowed within the expiration period.
func (r *suppressor) Allow(key string) bool {
	v, ok := r.cache.Get(key)
	if ok {
		timestamp := v.(time.Time)
		if time.Since(timestamp) <= r.expiration {
			return false
		}
		// Timed out. Fall through to renew the timestamp.
	}

	t := time.Now()
	// Update if the key already exists.
	r.cache.Add(key, t)
	logger.Debugf("added a new suppressor entry: key=%v, timestamp=%v", key, t)

	return true
}

func (r *suppressor) RemoveAll() {
	r.cache.Purge()
	logger.Debug("removed all the suppressor entries")
}
