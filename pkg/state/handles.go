/*
Copyright 2024 The Reduceflow Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package state

import "context"

// State is a handle to one piece of persisted state at one namespace. The
// addressing layer resolves handles and hands them to the reduce function
// without ever inspecting the value; every method that touches storage can
// block and returns the storage engine's error unchanged.
//
// Values are raw bytes end to end. Element serialization belongs to the layer
// above; stores must not interpret the payload.
type State interface {
	// Clear removes the persisted value behind the handle.
	Clear(ctx context.Context) error
}

// ValueState is the handle served for ValueTag tags.
type ValueState interface {
	State
	// Read returns the current value, or (nil, nil) if nothing was written.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the current value.
	Write(ctx context.Context, value []byte) error
}

// BagState is the handle served for BagTag tags.
type BagState interface {
	State
	// Add appends a value to the bag.
	Add(ctx context.Context, value []byte) error
	// Read returns all values in the bag. Order is not defined.
	Read(ctx context.Context) ([][]byte, error)
}
