// SPDX-License-Identifier: MIT

// Package presenter orders found words and draws each one as a 4×4 grid with
// the step number of every tile on its path.
//
//	+------+------+------+------+
//	|  1   |  2   |  3   |      |
//	+------+------+------+------+
//	|      |      |      |      |
//	...
//	             cat
//
// Output is split into producer and consumer: Stream feeds entries into a
// channel and Pager.Run renders them, pausing after every page until a line
// is read from its input. Closing the input or cancelling the context stops
// the pager with ErrStopped.
package presenter
