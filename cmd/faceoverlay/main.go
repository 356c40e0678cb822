/*
Command faceoverlay draws the face detection overlay onto images, videos and
live windows from detection results stored as JSON.
*/
package main

import "log"

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	Execute()
}
