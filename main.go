package main

import "github.com/Rorical/EmotionAnalyzer/cmd"

func main() {
	cmd.Execute()
}
