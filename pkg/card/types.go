package card

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// DefaultVersion is the adaptive card schema version used for new cards.
const DefaultVersion = "1.5"

// SchemaURL is the adaptive card JSON schema reference emitted on every card.
const SchemaURL = "http://adaptivecards.io/schemas/adaptive-card.json"

// Element type tags as they appear on the wire.
const (
	TypeAdaptiveCard = "AdaptiveCard"
	TypeTextBlock    = "TextBlock"
	TypeImage        = "Image"
	TypeContainer    = "Container"
	TypeColumnSet    = "ColumnSet"
	TypeColumn       = "Column"
	TypeFactSet      = "FactSet"
	TypeTextInput    = "Input.Text"
	TypeDateInput    = "Input.Date"
	TypeChoiceSet    = "Input.ChoiceSet"
	TypeOpenURL      = "Action.OpenUrl"
	TypeSubmit       = "Action.Submit"
)

// FontSize controls text block sizing.
type FontSize string

const (
	SizeSmall      FontSize = "small"
	SizeDefault    FontSize = "default"
	SizeMedium     FontSize = "medium"
	SizeLarge      FontSize = "large"
	SizeExtraLarge FontSize = "extraLarge"
)

// FontWeight controls text block weight.
type FontWeight string

const (
	WeightLighter FontWeight = "lighter"
	WeightDefault FontWeight = "default"
	WeightBolder  FontWeight = "bolder"
)

// Color is a semantic text color.
type Color string

const (
	ColorDefault   Color = "default"
	ColorAccent    Color = "accent"
	ColorGood      Color = "good"
	ColorWarning   Color = "warning"
	ColorAttention Color = "attention"
)

// Spacing controls the gap before an element.
type Spacing string

const (
	SpacingNone       Spacing = "none"
	SpacingSmall      Spacing = "small"
	SpacingDefault    Spacing = "default"
	SpacingMedium     Spacing = "medium"
	SpacingLarge      Spacing = "large"
	SpacingExtraLarge Spacing = "extraLarge"
	SpacingPadding    Spacing = "padding"
)

// ContainerStyle is a container background style.
type ContainerStyle string

const (
	StyleDefault   ContainerStyle = "default"
	StyleEmphasis  ContainerStyle = "emphasis"
	StyleAccent    ContainerStyle = "accent"
	StyleGood      ContainerStyle = "good"
	StyleWarning   ContainerStyle = "warning"
	StyleAttention ContainerStyle = "attention"
)

// ImageSize controls image scaling.
type ImageSize string

const (
	ImageAuto    ImageSize = "auto"
	ImageStretch ImageSize = "stretch"
	ImageSmall   ImageSize = "small"
	ImageMedium  ImageSize = "medium"
	ImageLarge   ImageSize = "large"
)

// ImageStyle controls image cropping.
type ImageStyle string

const (
	ImageStyleDefault ImageStyle = "default"
	ImageStylePerson  ImageStyle = "person"
)

// VerticalAlignment positions column content vertically.
type VerticalAlignment string

const (
	AlignTop    VerticalAlignment = "top"
	AlignCenter VerticalAlignment = "center"
	AlignBottom VerticalAlignment = "bottom"
)

// ActionStyle controls action button styling.
type ActionStyle string

const (
	ActionStyleDefault     ActionStyle = "default"
	ActionStylePositive    ActionStyle = "positive"
	ActionStyleDestructive ActionStyle = "destructive"
)
