// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// MinColumnWidth is the narrowest a dashboard column will render
	MinColumnWidth = 24
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalMaxVisibleRows is the maximum number of scrollable rows shown at once
	ModalMaxVisibleRows = 14
)
