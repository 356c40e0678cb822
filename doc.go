/*
Package faceoverlay draws an animated annotation layer over faces found by a
face detector.

Each detection gets a two layer dashed frame with corner accents, a scan
line sweeping down the box and a match score readout.  Detections are given
an identity by their position in the result: the first two use the named
profiles of the IdentityTable and are shown with an identity card, any
further detections use the fallback profile and are obscured.

Drawing goes through the Canvas interface.  The render package paints onto
gocv Mats, the raster package onto image.RGBA in pure Go and Recorder
captures the draw commands.

See cmd/faceoverlay for rendering images, videos and live windows.
*/
package faceoverlay
