// Copyright 2024 The go-waku-payload Authors
// This file is part of the go-waku-payload library.
//
// The go-waku-payload library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-waku-payload library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-waku-payload library. If not, see <http://www.gnu.org/licenses/>.

// Package payload implements the version-1 Waku payload codec: a
// self-describing clear envelope (flags, size field, padding, optional
// signature) wrapped in either ECIES asymmetric encryption or AES-256-GCM
// symmetric encryption.
//
// The codec has no process-wide state. Every exported function is a pure
// transform from input bytes and keys to output bytes; callers own both ends
// of the buffers they pass in and get back.
package payload
