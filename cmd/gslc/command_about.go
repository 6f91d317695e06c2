package main

import (
	"fmt"

	"github.com/fatih/color"
)

// AboutCmd represents the about command
type AboutCmd struct{}

// Run executes the about command
func (cmd *AboutCmd) Run(ctx *Context) error {
	color.New(color.Bold).Fprintf(ctx.Stdout, "Geometry Shorthand Language compiler (gslc) v%s\n\n", version)
	fmt.Fprint(ctx.Stdout, `GSL is a compact, rigorous notation for geometric constructions and proofs.
gslc translates it into English sentences and reads it aloud in its spoken form.

Basic syntax:
  \\...\\      wrap shorthand in double backslashes
  /            separate statements
  P:A          construct point A
  S:AB         connect segment AB
  J:ABC        construct polygon ABC
  [ABC]=20     the area of ABC is 20
  <ABC=90      angle ABC measures 90 degrees
  AB=BC\?      prove that AB = BC

Examples:
  gslc '\\P:A,B/S:AB\\'
  gslc pronounce -s '\\P:A/S:AB\\'
  gslc -f problem.gsl -o solution.txt
  gslc reference theorems
`)

	return nil
}
