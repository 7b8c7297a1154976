package main

import "workplanner/internal/initializers"

func main() {
	initializers.RunWorkPlanner()
}
