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

// TagKind says which handle shape a store must return for a tag.
type TagKind int

const (
	// ValueTag holds a single value that is overwritten on every write.
	ValueTag TagKind = iota
	// BagTag holds an unordered collection that grows by appending.
	BagTag
)

func (k TagKind) String() string {
	switch k {
	case ValueTag:
		return "Value"
	case BagTag:
		return "Bag"
	default:
		return "Unknown"
	}
}

// Tag is an immutable descriptor naming one piece of reduce state, e.g. the
// buffered values of a window or a pane counter. The key type parameter is a
// compile-time marker: a tag is only usable against stores of the same key
// type, it carries no key value.
type Tag[K any] struct {
	id   string
	kind TagKind
}

// NewTag returns a tag with the given id and handle kind. Ids must be unique
// within one reduce stage.
func NewTag[K any](id string, kind TagKind) Tag[K] {
	return Tag[K]{id: id, kind: kind}
}

// ID returns the tag's unique name.
func (t Tag[K]) ID() string {
	return t.id
}

// Kind returns the handle shape stores must serve for this tag.
func (t Tag[K]) Kind() TagKind {
	return t.kind
}
