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

// Package state defines how the reduce engine addresses durable per-window
// state: namespaces derived from window encodings, tags naming individual
// pieces of state, and the storage engine boundary the addressing layer
// resolves against. Nothing in this package performs I/O; handles returned by
// a Store do.
package state

import (
	"encoding/hex"
	"fmt"
)

// Kind tags a namespace with the scope it was derived from.
type Kind int

const (
	// KindGlobal scopes state to the key alone, independent of any window.
	KindGlobal Kind = iota
	// KindWindow scopes state to one window of one key. Only window-scoped
	// namespaces may host per-window timers.
	KindWindow
)

func (k Kind) String() string {
	switch k {
	case KindGlobal:
		return "Global"
	case KindWindow:
		return "Window"
	default:
		return "Unknown"
	}
}

// Namespace is the storage key state is filed under. Two namespaces are equal
// iff their deriving windows encode identically, so Namespace is a comparable
// value type and the key string is the whole identity.
type Namespace struct {
	kind Kind
	key  string
}

// Global returns the namespace for state scoped to the key alone.
func Global() Namespace {
	return Namespace{kind: KindGlobal, key: "/"}
}

// ForWindow derives the namespace for a window from its deterministic
// encoding.
func ForWindow(encodedWindow []byte) Namespace {
	return Namespace{
		kind: KindWindow,
		key:  "/" + hex.EncodeToString(encodedWindow) + "/",
	}
}

// Kind returns the scope the namespace was derived from.
func (n Namespace) Kind() Kind {
	return n.kind
}

// Key returns the storage key. Stores use it verbatim; it is unique across
// kinds.
func (n Namespace) Key() string {
	return n.key
}

func (n Namespace) String() string {
	return fmt.Sprintf("%s:%s", n.kind, n.key)
}
