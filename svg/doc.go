// Package svg projects uni-nested algebra forms onto nested SVG shapes.
//
// A uni-nested form is a chain of containers each holding at most one child,
// such as the J-form [<()>]. [Project] turns the chain into one [Shape] per
// container, innermost first, growing by [SizeStep] from [BaseSize]:
//
//	shapes, err := svg.Project(ctx, algebra.J())
//	// Circle (round, 0.6), Path (angle, 1.15), Path (square, 1.7)
//
// [WriteDocument] paints a shape list as a standalone SVG document.
package svg
