/*
NAME
  metadata.go

DESCRIPTION
  metadata.go is the single source of truth for every command category's
  variant table: parameter byte, wire data type, bounds, and payload field
  layout. cmd/gencommand reads this table and emits each category's
  zz_generated.go.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package gen declares the metadata table that drives cmd/gencommand, the
// code generator for the per-category command decoders under command/.
package gen

// FieldType names a wire primitive a Field may decode as.
type FieldType string

const (
	Bool   FieldType = "bool"
	Int8   FieldType = "int8"
	Int16  FieldType = "int16"
	Int32  FieldType = "int32"
	Int64  FieldType = "int64"
	String FieldType = "string"
	FPD    FieldType = "fpd"
)

// Field is one named scalar within a variant's payload. A scalar variant
// has exactly one Field and no composite wrapper type; a composite variant
// has two or more, decoded as an ordered tuple of the same FieldType.
type Field struct {
	Name string
	Type FieldType
}

// Bounds is an inclusive range checked when the bounds-checked feature is
// enabled. Lower/Upper are Go expression literals as they should appear in
// generated source (e.g. "0.0", "wire.Int8Min"); an empty string takes the
// field type's natural domain extremum.
type Bounds struct {
	Lower, Upper string
}

// Variant is one parameter's full decode specification.
type Variant struct {
	Name string
	// Parameter is the wire parameter byte within the category.
	Parameter byte
	// DataType is empty for action variants (no payload, no data_type
	// check): the decoder returns the zero-field variant directly.
	DataType FieldType
	// Bounds is nil when no range is declared. Only meaningful for
	// numeric/FPD field types; the generator refuses to pair it with Bool
	// or String. For a composite (len(Fields) > 1) variant, the same
	// Bounds is applied to every field in turn.
	Bounds *Bounds
	// Fields describes the payload layout. A single entry with no name
	// (or Name == "Data") decodes as a bare scalar; multiple entries
	// decode as a composite struct in declared order.
	Fields []Field
	// StructName overrides the default "<Name>Data" composite payload
	// struct the generator references. Empty uses the default. Set this
	// when several variants share one payload struct (e.g. the color
	// correction wheels' WheelData).
	StructName string
	// AllowToggle permits a nonzero operation byte on a Bool variant to
	// decode as Toggle instead of being rejected. Unused by any entry
	// below; present for downstream variants that need it.
	AllowToggle bool
	// Bespoke marks a variant whose dispatch case and decode function the
	// generic {type-check, payload-decode, bounds-check, operation-decode,
	// construction} shape can't express. BespokeCase/BespokeFunc supply
	// that variant's case body and decode function as literal source,
	// which the generator copies verbatim instead of synthesizing one.
	// Only Video's dual-form NDFilterStop needs this.
	Bespoke      bool
	BespokeCase  string
	BespokeFunc  string
}

// Category is one top-level command category and its full variant table.
type Category struct {
	Name     string
	Package  string
	Byte     byte
	Variants []Variant
	// ExtraDecodeArg, when non-empty, is an additional bool parameter
	// threaded through Decode's signature, needed by a Bespoke variant
	// (Video's ignore-nd-filter option). ExtraDecodeArgDoc is appended to
	// Decode's doc comment when set.
	ExtraDecodeArg    string
	ExtraDecodeArgDoc string
}

// Categories is the complete per-variant metadata table underlying every
// command/<package>/zz_generated.go file.
var Categories = []Category{
	{
		Name: "Lens", Package: "lens", Byte: 0x00,
		Variants: []Variant{
			{Name: "Focus", Parameter: 0x00, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "InstantaneousAutoFocus", Parameter: 0x01},
			{Name: "ApertureFStop", Parameter: 0x02, DataType: FPD, Bounds: &Bounds{"-1.0", "16.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "ApertureNormalized", Parameter: 0x03, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "ApertureOrdinal", Parameter: 0x04, DataType: Int16, Bounds: &Bounds{"0", ""}, Fields: []Field{{"Data", Int16}}},
			{Name: "InstantaneousAutoAperture", Parameter: 0x05},
			{Name: "OpticalImageStabilization", Parameter: 0x06, DataType: Bool, Fields: []Field{{"Data", Bool}}},
			{Name: "AbsoluteZoomMM", Parameter: 0x07, DataType: Int16, Bounds: &Bounds{"0", ""}, Fields: []Field{{"Data", Int16}}},
			{Name: "AbsoluteZoomNormalized", Parameter: 0x08, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "AbsoluteZoomContinuous", Parameter: 0x09, DataType: FPD, Bounds: &Bounds{"-1.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
		},
	},
	{
		Name: "Video", Package: "video", Byte: 0x01,
		Variants: []Variant{
			{Name: "VideoMode", Parameter: 0x00, DataType: Int8, Fields: []Field{
				{"FrameRate", Int8}, {"MRate", Int8}, {"Dimensions", Int8}, {"Interlaced", Int8}, {"ColorSpace", Int8},
			}},
			{Name: "GainLegacy", Parameter: 0x01, DataType: Int8, Bounds: &Bounds{"1", "16"}, Fields: []Field{{"Data", Int8}}},
			{Name: "ManualWhiteBalance", Parameter: 0x02, DataType: Int16, Fields: []Field{{"ColorTemp", Int16}, {"Tint", Int16}}},
			{Name: "SetAutoWB", Parameter: 0x03},
			{Name: "RestoreAutoWB", Parameter: 0x04},
			{Name: "ExposureUS", Parameter: 0x05, DataType: Int32, Bounds: &Bounds{"1", "42000"}, Fields: []Field{{"Data", Int32}}},
			{Name: "ExposureOrdinal", Parameter: 0x06, DataType: Int16, Bounds: &Bounds{"0", ""}, Fields: []Field{{"Data", Int16}}},
			{Name: "DynamicRangeMode", Parameter: 0x07, DataType: Int8, Bounds: &Bounds{"0", "1"}, Fields: []Field{{"Data", Int8}}},
			{Name: "VideoSharpeningLevel", Parameter: 0x08, DataType: Int8, Bounds: &Bounds{"0", "3"}, Fields: []Field{{"Data", Int8}}},
			{Name: "RecordingFormat", Parameter: 0x09, DataType: Int16, Fields: []Field{
				{"FileFrameRate", Int16}, {"SensorFrameRate", Int16}, {"FrameWidth", Int16}, {"FrameHeight", Int16}, {"Flags", Int16},
			}},
			{Name: "AutoExposureMode", Parameter: 0x0a, DataType: Int8, Bounds: &Bounds{"0", "4"}, Fields: []Field{{"Data", Int8}}},
			{Name: "ShutterAngle", Parameter: 0x0b, DataType: Int32, Bounds: &Bounds{"100", "36000"}, Fields: []Field{{"Data", Int32}}},
			{Name: "ShutterSpeed", Parameter: 0x0c, DataType: Int32, Bounds: &Bounds{"24", "2000"}, Fields: []Field{{"Data", Int32}}},
			{Name: "Gain", Parameter: 0x0d, DataType: Int8, Bounds: &Bounds{"", ""}, Fields: []Field{{"Data", Int8}}},
			{Name: "ISO", Parameter: 0x0e, DataType: Int32, Bounds: &Bounds{"0", ""}, Fields: []Field{{"Data", Int32}}},
			{Name: "DisplayLUT", Parameter: 0x0f, DataType: Int8, Fields: []Field{{"Selected", Int8}, {"Enabled", Int8}}},
			{
				Name: "NDFilterStop", Parameter: 0x10, DataType: FPD,
				Bespoke: true,
				BespokeCase: `if ignoreNDFilter {
	return NDFilterAction{}, nil
}
return decodeNDFilterStop(data, boundsChecked)`,
				BespokeFunc: `func decodeNDFilterStop(data wire.CommandData, boundsChecked bool) (Command, error) {
	if err := wire.CheckDataType(data, wire.DataFPD); err != nil {
		return nil, err
	}
	p := data.Payload()
	if len(p) < 4 {
		return nil, &wire.InvalidCommandDataError{Message: "payload too short for NDFilterStop", RecordBytes: data.Bytes()}
	}
	stop, err := wire.DecodeFPD(p[0:2], data.Bytes())
	if err != nil {
		return nil, err
	}
	displayMode, err := wire.DecodeFPD(p[2:4], data.Bytes())
	if err != nil {
		return nil, err
	}
	if boundsChecked {
		if err := wire.CheckBoundsFPD("Video.NDFilterStop.Stop", stop, wire.FPDMin, wire.FPDMax); err != nil {
			return nil, err
		}
		if err := wire.CheckBoundsFPD("Video.NDFilterStop.DisplayMode", displayMode, wire.FPDMin, wire.FPDMax); err != nil {
			return nil, err
		}
	}
	return NDFilterStop{
		Operation: wire.DecodeNumericOperation(data.Operation()),
		Data:      NDFilterStopData{Stop: stop, DisplayMode: displayMode},
	}, nil
}`,
			},
		},
		ExtraDecodeArg: "ignoreNDFilter",
		ExtraDecodeArgDoc: "ignoreNDFilter selects whether parameter 0x10 is decoded " +
			"as the structured NDFilterStop variant or the action-only NDFilterAction variant.",
	},
	{
		Name: "Audio", Package: "audio", Byte: 0x02,
		Variants: []Variant{
			{Name: "MicLevel", Parameter: 0x00, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "HeadphoneLevel", Parameter: 0x01, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "HeadphoneProgramMix", Parameter: 0x02, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "SpeakerLevel", Parameter: 0x03, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "InputType", Parameter: 0x04, DataType: Int8, Bounds: &Bounds{"0", "3"}, Fields: []Field{{"Data", Int8}}},
			{Name: "InputLevels", Parameter: 0x05, DataType: FPD, Bounds: &Bounds{"", ""}, Fields: []Field{{"ChannelOne", FPD}, {"ChannelTwo", FPD}}},
			{Name: "PhantomPower", Parameter: 0x06, DataType: Bool, Fields: []Field{{"Data", Bool}}},
		},
	},
	{
		Name: "Output", Package: "output", Byte: 0x03,
		Variants: []Variant{
			{Name: "OverlayEnabled", Parameter: 0x00, DataType: Int16, Fields: []Field{{"Data", Int16}}},
			{Name: "FrameGuideStyles", Parameter: 0x01, DataType: Int8, Bounds: &Bounds{"0", "8"}, Fields: []Field{{"Data", Int8}}},
			{Name: "FrameGuidesOpacity", Parameter: 0x02, DataType: FPD, Bounds: &Bounds{"0.1", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "Overlays", Parameter: 0x03, DataType: Int8, Fields: []Field{
				{"FrameGuideStyle", Int8}, {"FrameGuideOpacity", Int8}, {"SafeAreaPercentage", Int8}, {"GridStyle", Int8},
			}},
		},
	},
	{
		Name: "Display", Package: "display", Byte: 0x04,
		Variants: []Variant{
			{Name: "Brightness", Parameter: 0x00, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "OverlaysEnabled", Parameter: 0x01, DataType: Int16, Fields: []Field{{"Data", Int16}}},
			{Name: "ZebraLevel", Parameter: 0x02, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "PeakingLevel", Parameter: 0x03, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "ColorBarsDisplayTime", Parameter: 0x04, DataType: Int8, Bounds: &Bounds{"0", "30"}, Fields: []Field{{"Data", Int8}}},
			{Name: "FocusAssist", Parameter: 0x05, DataType: Int8, Fields: []Field{{"Method", Int8}, {"Color", Int8}}},
		},
	},
	{
		Name: "Tally", Package: "tally", Byte: 0x05,
		Variants: []Variant{
			{Name: "TallyBrightness", Parameter: 0x00, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "FrontTallyBrightness", Parameter: 0x01, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "RearTallyBrightness", Parameter: 0x02, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
		},
	},
	{
		Name: "Reference", Package: "reference", Byte: 0x06,
		Variants: []Variant{
			{Name: "Source", Parameter: 0x00, DataType: Int8, Bounds: &Bounds{"0", "1"}, Fields: []Field{{"Data", Int8}}},
			{Name: "Offset", Parameter: 0x01, DataType: Int32, Fields: []Field{{"Data", Int32}}},
		},
	},
	{
		Name: "Configuration", Package: "configuration", Byte: 0x07,
		Variants: []Variant{
			{Name: "RealTimeClock", Parameter: 0x00, DataType: Int32, Fields: []Field{{"Time", Int32}, {"Date", Int32}}},
			{Name: "SystemLanguage", Parameter: 0x01, DataType: String, Fields: []Field{{"Data", String}}},
			// 0x02 is unused/unspecified for this category.
			{Name: "TimeZone", Parameter: 0x03, DataType: Int32, Fields: []Field{{"Data", Int32}}},
			{Name: "Location", Parameter: 0x04, DataType: Int64, Fields: []Field{{"Latitude", Int64}, {"Longitude", Int64}}},
		},
	},
	{
		Name: "ColorCorrection", Package: "colorcorrection", Byte: 0x08,
		Variants: []Variant{
			{Name: "LiftAdjust", Parameter: 0x00, DataType: FPD, StructName: "WheelData", Fields: []Field{{"Red", FPD}, {"Green", FPD}, {"Blue", FPD}, {"Luma", FPD}}},
			{Name: "GammaAdjust", Parameter: 0x01, DataType: FPD, StructName: "WheelData", Fields: []Field{{"Red", FPD}, {"Green", FPD}, {"Blue", FPD}, {"Luma", FPD}}},
			{Name: "GainAdjust", Parameter: 0x02, DataType: FPD, StructName: "WheelData", Fields: []Field{{"Red", FPD}, {"Green", FPD}, {"Blue", FPD}, {"Luma", FPD}}},
			{Name: "OffsetAdjust", Parameter: 0x03, DataType: FPD, StructName: "WheelData", Fields: []Field{{"Red", FPD}, {"Green", FPD}, {"Blue", FPD}, {"Luma", FPD}}},
			{Name: "ContrastAdjust", Parameter: 0x04, DataType: FPD, Fields: []Field{{"Pivot", FPD}, {"Adj", FPD}}},
			{Name: "LumaMix", Parameter: 0x05, DataType: FPD, Bounds: &Bounds{"0.0", "1.0"}, Fields: []Field{{"Data", FPD}}},
			{Name: "ColorAdjust", Parameter: 0x06, DataType: FPD, Fields: []Field{{"Hue", FPD}, {"Sat", FPD}}},
			{Name: "CorrectionResetDefault", Parameter: 0x07},
		},
	},
	{
		Name: "Media", Package: "media", Byte: 0x0a,
		Variants: []Variant{
			{Name: "Codec", Parameter: 0x00, DataType: Int8, Fields: []Field{{"BasicCodec", Int8}, {"CodecVariant", Int8}}},
			{Name: "TransportMode", Parameter: 0x01, DataType: Int8, Fields: []Field{
				{"Mode", Int8}, {"Speed", Int8}, {"Flags", Int8}, {"SlotOneStorageMedium", Int8}, {"SlotTwoStorageMedium", Int8},
			}},
		},
	},
	{
		Name: "PtzControl", Package: "ptz", Byte: 0x0b,
		Variants: []Variant{
			{Name: "PanTiltVelocity", Parameter: 0x00, DataType: FPD, Fields: []Field{{"PanVelocity", FPD}, {"TiltVelocity", FPD}}},
			{Name: "MemoryPreset", Parameter: 0x01, DataType: Int8, Fields: []Field{{"PresetCommand", Int8}, {"PresetSlot", Int8}}},
		},
	},
}
