// Copyright 2026 Prajna Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/prajna-labs/prajna/core"
)

// vectorMUS serializes embedding vectors as length-prefixed raw float32s.
var vectorMUS = ord.NewSliceSer[float32](raw.Float32)

// ChunkRecordMUS serializes ChunkRecord fields in declaration order.
// The serializer is hand-written against mus-go primitives; the record is a
// single flat struct, so there is no generator step.
var ChunkRecordMUS = chunkRecordMUS{}

type chunkRecordMUS struct{}

func (s chunkRecordMUS) Marshal(r ChunkRecord, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(r.Id), bs)
	n += ord.String.Marshal(r.Text, bs[n:])
	n += ord.String.Marshal(r.Source, bs[n:])
	n += vectorMUS.Marshal(r.Vector, bs[n:])
	return n
}

func (s chunkRecordMUS) Unmarshal(bs []byte) (r ChunkRecord, n int, err error) {
	var (
		id uint64
		n1 int
	)
	id, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	r.Id = core.ID(id)

	r.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	r.Source, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	r.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s chunkRecordMUS) Size(r ChunkRecord) (size int) {
	size = varint.Uint64.Size(uint64(r.Id))
	size += ord.String.Size(r.Text)
	size += ord.String.Size(r.Source)
	size += vectorMUS.Size(r.Vector)
	return size
}

func (s chunkRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Uint64.Skip(bs)
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}

// MarshalChunkRecord serializes a ChunkRecord to bytes.
func MarshalChunkRecord(record *ChunkRecord) []byte {
	buf := make([]byte, ChunkRecordMUS.Size(*record))
	ChunkRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalChunkRecord deserializes a ChunkRecord from bytes.
func UnmarshalChunkRecord(data []byte) (*ChunkRecord, error) {
	record, _, err := ChunkRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalDimension serializes the store's pinned embedding dimensionality.
func MarshalDimension(dim int) []byte {
	buf := make([]byte, varint.Int.Size(dim))
	varint.Int.Marshal(dim, buf)
	return buf
}

// UnmarshalDimension deserializes the pinned embedding dimensionality.
func UnmarshalDimension(data []byte) (int, error) {
	dim, _, err := varint.Int.Unmarshal(data)
	return dim, err
}
