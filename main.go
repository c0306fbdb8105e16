package main

import "github.com/Muneer320/Class-Timetable/cmd"

func main() {
	cmd.Execute()
}
