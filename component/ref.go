/*
 * MIT License
 *
 * Copyright (c) 2024-2026 GoActive Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package component

// Ref is a liveness-checked weak handle to a Component. Holding a Ref never
// keeps a component running: Get resolves to a usable handle only while the
// component has not been stopped, and to a definitive "gone" answer after.
//
// Timers capture a Ref at start time and re-resolve it at firing time, which
// closes the race between "component stopped" and "timer about to fire".
type Ref struct {
	comp *Component
}

// Get resolves the weak handle. The boolean is false when the handle is the
// zero value or the component is no longer alive.
func (r Ref) Get() (*Component, bool) {
	if r.comp == nil || !r.comp.alive.Load() {
		return nil, false
	}
	return r.comp, true
}
