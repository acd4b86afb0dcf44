// poolbench runs synthetic workloads against the tree strategies and
// the pool allocator and reports timings and memory shape.
package main

func main() {
	execute()
}
