// Package planner expands user intents (new generation, batch edit, batch
// upscale, colorize, decolorize, retry) into lists of job descriptors and
// schedules them through the runner and executor. Planning itself is pure:
// descriptors are computed up front and each thunk closes over exactly one.
package planner
