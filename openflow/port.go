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
)

// PortNumber is the canonical (32-bit) port number. OpenFlow 1.0 ports are 16 bits
// long on the wire and widened to this type without remapping.
type PortNumber uint32

// Reserved port numbers of OpenFlow 1.3.
const (
	OFPP_MAX        PortNumber = 0xffffff00
	OFPP_IN_PORT    PortNumber = 0xfffffff8
	OFPP_TABLE      PortNumber = 0xfffffff9
	OFPP_NORMAL     PortNumber = 0xfffffffa
	OFPP_FLOOD      PortNumber = 0xfffffffb
	OFPP_ALL        PortNumber = 0xfffffffc
	OFPP_CONTROLLER PortNumber = 0xfffffffd
	OFPP_LOCAL      PortNumber = 0xfffffffe
	OFPP_ANY        PortNumber = 0xffffffff
)

func (r PortNumber) String() string {
	switch r {
	case OFPP_IN_PORT:
		return "IN_PORT"
	case OFPP_TABLE:
		return "TABLE"
	case OFPP_NORMAL:
		return "NORMAL"
	case OFPP_FLOOD:
		return "FLOOD"
	case OFPP_ALL:
		return "ALL"
	case OFPP_CONTROLLER:
		return "CONTROLLER"
	case OFPP_LOCAL:
		return "LOCAL"
	case OFPP_ANY:
		return "ANY"
	default:
		return fmt.Sprintf("%v", uint32(r))
	}
}
