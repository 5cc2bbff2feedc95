/*
Package blist offers copy-on-write containers built on a balanced multiway
tree: List, Set, Map and MultiMap.

Handles

Every container is a handle holding a single pointer to the root of a
btree.Tree. Clone copies a container in constant time; the copies share
their nodes until one of them is modified, and then only the nodes on the
path to the modification are copied. Plain assignment does not copy: two
variables assigned from one another refer to the same container and must not
both be used. Deplete empties a container and releases its nodes right away.

Containers

List is a sequence with positional access, insertion and removal, each
in logarithmic time. Set, Map and MultiMap keep their elements sorted by
key. A Set of predeclared integers stores contiguous values as dense ranges,
so a set of a million consecutive integers occupies a single leaf.

A Map or MultiMap may be turned into a List of its key-value pairs without
copying, see ListFromMap and ListFromMultiMap.

Locators

Find and friends return a Locator, a lightweight position in a container.
Locators are valid until the container they were taken from is modified;
modifying a clone of the container does not invalidate them.

Containers are not safe for concurrent mutation. Distinct clones may be used
from different goroutines.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package blist

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ContainerError is an error type for the blist module.
type ContainerError string

func (e ContainerError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position is negative or
// beyond the length of a container.
const ErrIndexOutOfBounds = ContainerError("index out of bounds")
