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

package of10

import (
	"net"

	"github.com/ofwire/ofdecode/openflow"
)

func NewOutputDecoder() *openflow.CaseDecoder {
	return openflow.NewActionCaseDecoder(openflow.OF10_VERSION, OFPAT_OUTPUT, openflow.Output{}, func(buf *openflow.Buffer, header openflow.ActionHeader) (openflow.ActionChoice, error) {
		port, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		maxLen, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		return openflow.Output{Port: openflow.PortNumber(port), MaxLength: maxLen}, nil
	})
}

func NewSetVlanVidDecoder() *openflow.CaseDecoder {
	return openflow.NewUint16ActionDecoder(openflow.OF10_VERSION, OFPAT_SET_VLAN_VID, openflow.SetVlanVid{}, openflow.PadVlanVid, func(v uint16) openflow.ActionChoice {
		return openflow.SetVlanVid{VlanVid: v}
	})
}

func NewSetVlanPcpDecoder() *openflow.CaseDecoder {
	return openflow.NewUint8ActionDecoder(openflow.OF10_VERSION, OFPAT_SET_VLAN_PCP, openflow.SetVlanPcp{}, openflow.PadVlanPcp, func(v uint8) openflow.ActionChoice {
		return openflow.SetVlanPcp{VlanPcp: v}
	})
}

func NewStripVlanDecoder() *openflow.CaseDecoder {
	return openflow.NewEmptyActionDecoder(openflow.OF10_VERSION, OFPAT_STRIP_VLAN, openflow.StripVlan{}, openflow.PadEmpty)
}

func NewSetDlSrcDecoder() *openflow.CaseDecoder {
	return openflow.NewDlAddressActionDecoder(openflow.OF10_VERSION, OFPAT_SET_DL_SRC, openflow.SetDlSrc{}, func(mac net.HardwareAddr) openflow.ActionChoice {
		return openflow.SetDlSrc{Address: mac}
	})
}

func NewSetDlDstDecoder() *openflow.CaseDecoder {
	return openflow.NewDlAddressActionDecoder(openflow.OF10_VERSION, OFPAT_SET_DL_DST, openflow.SetDlDst{}, func(mac net.HardwareAddr) openflow.ActionChoice {
		return openflow.SetDlDst{Address: mac}
	})
}

func NewSetNwSrcDecoder() *openflow.CaseDecoder {
	return openflow.NewNwAddressActionDecoder(openflow.OF10_VERSION, OFPAT_SET_NW_SRC, openflow.SetNwSrc{}, func(ip net.IP) openflow.ActionChoice {
		return openflow.SetNwSrc{Address: ip}
	})
}

func NewSetNwDstDecoder() *openflow.CaseDecoder {
	return openflow.NewNwAddressActionDecoder(openflow.OF10_VERSION, OFPAT_SET_NW_DST, openflow.SetNwDst{}, func(ip net.IP) openflow.ActionChoice {
		return openflow.SetNwDst{Address: ip}
	})
}

func NewSetNwTosDecoder() *openflow.CaseDecoder {
	return openflow.NewUint8ActionDecoder(openflow.OF10_VERSION, OFPAT_SET_NW_TOS, openflow.SetNwTos{}, openflow.PadNwTos, func(v uint8) openflow.ActionChoice {
		return openflow.SetNwTos{Tos: v}
	})
}

func NewSetTpSrcDecoder() *openflow.CaseDecoder {
	return openflow.NewTpPortActionDecoder(openflow.OF10_VERSION, OFPAT_SET_TP_SRC, openflow.SetTpSrc{}, func(port openflow.PortNumber) openflow.ActionChoice {
		return openflow.SetTpSrc{Port: port}
	})
}

func NewSetTpDstDecoder() *openflow.CaseDecoder {
	return openflow.NewTpPortActionDecoder(openflow.OF10_VERSION, OFPAT_SET_TP_DST, openflow.SetTpDst{}, func(port openflow.PortNumber) openflow.ActionChoice {
		return openflow.SetTpDst{Port: port}
	})
}

// Enqueue exists only in OpenFlow 1.0. OpenFlow 1.3 uses SET_QUEUE followed by OUTPUT instead.
func NewEnqueueDecoder() *openflow.CaseDecoder {
	return openflow.NewActionCaseDecoder(openflow.OF10_VERSION, OFPAT_ENQUEUE, openflow.Enqueue{}, func(buf *openflow.Buffer, header openflow.ActionHeader) (openflow.ActionChoice, error) {
		port, err := buf.ReadUint16()
		if err != nil {
			return nil, err
		}
		if err := buf.Skip(openflow.PadEnqueue); err != nil {
			return nil, err
		}
		queue, err := buf.ReadUint32()
		if err != nil {
			return nil, err
		}
		return openflow.Enqueue{Port: openflow.PortNumber(port), QueueID: queue}, nil
	})
}
