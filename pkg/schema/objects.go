package schema

// ObjectAttachment is implemented by the typed object descriptions that can
// occupy a record's extension slot. Each implementation reports the object
// kind it represents; AttachObject rejects attachments whose kind does not
// match the record's declared object-kind tag.
//
// Descriptive string fields use "" for "unknown".
type ObjectAttachment interface {
	Kind() ObjectType
}

// VehicleObject describes a detected vehicle.
type VehicleObject struct {
	Type    string
	Make    string
	Model   string
	Color   string
	Region  string
	License string
}

func (*VehicleObject) Kind() ObjectType { return ObjectVehicle }

// VehicleObjectExt is a VehicleObject that additionally owns segmentation
// mask polygons.
type VehicleObjectExt struct {
	VehicleObject
	Mask []Polygon
}

func (*VehicleObjectExt) Kind() ObjectType { return ObjectVehicleExt }

// PersonObject describes a detected person.
type PersonObject struct {
	Gender  string
	Hair    string
	Cap     string
	Apparel string
	Age     uint
}

func (*PersonObject) Kind() ObjectType { return ObjectPerson }

// PersonObjectExt is a PersonObject that additionally owns segmentation
// mask polygons.
type PersonObjectExt struct {
	PersonObject
	Mask []Polygon
}

func (*PersonObjectExt) Kind() ObjectType { return ObjectPersonExt }

// FaceObject describes a detected face.
type FaceObject struct {
	Gender     string
	Hair       string
	Cap        string
	Glasses    string
	FacialHair string
	Name       string
	EyeColor   string
	Age        uint
}

func (*FaceObject) Kind() ObjectType { return ObjectFace }

// FaceObjectExt is a FaceObject that additionally owns segmentation mask
// polygons.
type FaceObjectExt struct {
	FaceObject
	Mask []Polygon
}

func (*FaceObjectExt) Kind() ObjectType { return ObjectFaceExt }

// ProductObject describes a detected retail product.
type ProductObject struct {
	Brand string
	Type  string
	Shape string
}

func (*ProductObject) Kind() ObjectType { return ObjectProduct }

// ProductObjectExt is a ProductObject that additionally owns segmentation
// mask polygons.
type ProductObjectExt struct {
	ProductObject
	Mask []Polygon
}

func (*ProductObjectExt) Kind() ObjectType { return ObjectProductExt }

// CustomObject carries a consumer-defined extension payload: a type-erased
// handle plus its declared byte size. The schema never interprets the
// handle; release goes through the destructor registered for Tag.
type CustomObject struct {
	Tag  ObjectType
	Data any
	Size uint
}

func (c *CustomObject) Kind() ObjectType { return c.Tag }
