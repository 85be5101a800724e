package scraper

// Markers in the listing pages
const (
	MarkerCostOpen    = "(Cost:"
	MarkerCost        = "Cost: "
	MarkerCostClose   = "):"
	MarkerSkulls      = " skulls"
	MarkerSkullsWord  = "skulls"
	MarkerTrap        = "Trap"
	MarkerTrapSuffix  = " Trap"
	MarkerPassive     = "Passive"
	MarkerPrimary     = "Primary"
	LabelPassive      = "Passive:"
	LabelActive       = "Active:"
	LabelPrimary      = "Primary:"
	LabelSecondary    = "Secondary:"
	MarkerSorceress   = "Sorceress Only"
	MarkerWarMage     = "War Mage Only"
	MarkerDashDesc    = " - "
	MarkerColonDesc   = ":"
	CostListSeparator = ","
	NameWordSeparator = " "
	NameSlugSeparator = "-"
	NameKeepLowercase = "of"
)

// Label substrings that classify an upgrade
const (
	KindLabelTier    = "Upgrade"
	KindLabelUnique  = "Unique"
	KindLabelSpecial = "Special"
)

// Item cells sit at these positions in a row
const (
	PrimaryCellIndex   = 1
	SecondaryCellIndex = 3
	// SecondaryCellMinChildren is the child count above which the secondary cell holds an item
	SecondaryCellMinChildren = 2
)

// Output formatting
const (
	JSONIndent = "  "
)

// Expectations reported in parse errors
const (
	ExpectTable        = "a table element"
	ExpectTbody        = "a tbody element in the table"
	ExpectAnchor       = "an anchor child"
	ExpectAnchorName   = "a name attribute on the anchor"
	ExpectHeading      = "an h6 or h4 heading inside the anchor"
	ExpectHeadingText  = "a text node in the heading"
	ExpectCost         = "an integer after the Cost: marker"
	ExpectBold         = "a bold label"
	ExpectLabelFmt     = "a %q label"
	ExpectLabelTextFmt = "a text node after the %q label"
	ExpectText         = "a text node for the short description"
	ExpectUpgradeCost  = "an integer upgrade cost"
)

// Log messages
const (
	LogMsgParsedCategory = "Parsed listing page"
	LogMsgCatalogBuilt   = "Catalog built"
	LogMsgCatalogWritten = "Catalog written"
)
