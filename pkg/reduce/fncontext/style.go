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

package fncontext

import "github.com/rangerwolf/reduceflow/pkg/state"

// Style decides which physical namespace backs named state for a window. It
// is a closed two-variant type: resolution sites pass one continuation per
// variant and exactly one is evaluated, so there is no default branch to
// forget and a new style cannot compile without updating every resolution
// site.
type Style interface {
	// resolve returns the backing namespace. direct derives it from the
	// window itself; renamed asks the active window set for the current
	// address. The unevaluated continuation is never called, which is what
	// keeps Direct from ever consulting the active window set.
	resolve(direct func() state.Namespace, renamed func() state.Namespace) state.Namespace
	String() string
}

// Direct addresses state at the namespace of the window itself. Used when
// windows of the strategy never merge.
var Direct Style = directStyle{}

// Renamed addresses state at whatever namespace the active window set
// currently designates for the window, so state keeps one stable address
// across merges. Used when windows can merge.
var Renamed Style = renamedStyle{}

type directStyle struct{}

func (directStyle) resolve(direct func() state.Namespace, _ func() state.Namespace) state.Namespace {
	return direct()
}

func (directStyle) String() string {
	return "Direct"
}

type renamedStyle struct{}

func (renamedStyle) resolve(_ func() state.Namespace, renamed func() state.Namespace) state.Namespace {
	return renamed()
}

func (renamedStyle) String() string {
	return "Renamed"
}
