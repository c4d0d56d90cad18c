// Package queue provides the FIFO work-queue collaborator used by the
// breadth-first traversal engine.
//
// Queue is a generic slice-ring buffer: Enqueue, Dequeue, Peek and Len are
// amortized O(1), growth doubles capacity. It carries no synchronization —
// one traversal owns one queue.
package queue
