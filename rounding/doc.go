// Package rounding aligns measured values with their uncertainties for
// reporting: an uncertainty is kept to its two leading significant
// digits and the value is rounded to the same decimal place, the usual
// lab-report convention. Bare values round to two significant figures.
//
// Ties round half away from zero ("half-up"), matching how results are
// rounded by hand in a report.
package rounding
