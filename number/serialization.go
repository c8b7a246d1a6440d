// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package number

import (
	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// bsonDoc is the on-the-wire shape of a Number: enough to reconstruct it
// exactly, independent of how many digits its coefficient carries.
type bsonDoc struct {
	Radix     int    `bson:"radix"`
	Coeff     string `bson:"coeff"`
	Exponent  int64  `bson:"exponent"`
	// Precision is stored signed, since BSON has no unsigned 64-bit
	// integer; Unlimited is stored as -1.
	Precision int64 `bson:"precision"`
}

// GetBSON encodes n as a BSON document, letting a Number round-trip through
// any store or wire protocol that speaks BSON (e.g. to hand an intermediate
// result to a worker process). The coefficient is stored as a base-36
// string since BSON has no arbitrary-precision integer type.
func (n *Number) GetBSON() (interface{}, error) {
	return bsonDoc{
		Radix:     n.radix,
		Coeff:     n.coeff.Text(36),
		Exponent:  n.exponent,
		Precision: int64(n.precision),
	}, nil
}

// SetBSON decodes a document produced by GetBSON into n.
func (n *Number) SetBSON(raw bson.Raw) error {
	var doc bsonDoc
	if err := raw.Unmarshal(&doc); err != nil {
		return errors.Wrap(err, "number: unmarshal BSON")
	}
	if doc.Radix < 2 || doc.Radix > 36 {
		return errors.Errorf("number: invalid radix %d in BSON document", doc.Radix)
	}
	if _, ok := n.coeff.SetString(doc.Coeff, 36); !ok {
		return errors.Errorf("number: invalid coefficient %q in BSON document", doc.Coeff)
	}
	n.radix = doc.Radix
	n.exponent = doc.Exponent
	n.precision = uint64(doc.Precision)
	return nil
}
