package constants

// AircraftCategory classifies an airframe for registry purposes
type AircraftCategory string

const (
	CategorySingleEngine AircraftCategory = "single_engine"
	CategoryMultiEngine  AircraftCategory = "multi_engine"
	CategoryJet          AircraftCategory = "jet"
	CategoryHelicopter   AircraftCategory = "helicopter"
	CategoryGlider       AircraftCategory = "glider"
	CategoryBalloon      AircraftCategory = "balloon"
	CategoryOther        AircraftCategory = "other"
)

var aircraftCategories = map[AircraftCategory]bool{
	CategorySingleEngine: true,
	CategoryMultiEngine:  true,
	CategoryJet:          true,
	CategoryHelicopter:   true,
	CategoryGlider:       true,
	CategoryBalloon:      true,
	CategoryOther:        true,
}

// Valid reports whether the category is a known value
func (c AircraftCategory) Valid() bool {
	return aircraftCategories[c]
}

// PilotCertificate is the FAA certificate class held by a pilot
type PilotCertificate string

const (
	CertificateStudent      PilotCertificate = "student"
	CertificateSport        PilotCertificate = "sport"
	CertificateRecreational PilotCertificate = "recreational"
	CertificatePrivate      PilotCertificate = "private"
	CertificateCommercial   PilotCertificate = "commercial"
	CertificateATP          PilotCertificate = "atp"
)

var pilotCertificates = map[PilotCertificate]bool{
	CertificateStudent:      true,
	CertificateSport:        true,
	CertificateRecreational: true,
	CertificatePrivate:      true,
	CertificateCommercial:   true,
	CertificateATP:          true,
}

func (c PilotCertificate) Valid() bool {
	return pilotCertificates[c]
}

// FlightType classifies the purpose of a logged operation
type FlightType string

const (
	FlightLocal        FlightType = "local"
	FlightCrossCountry FlightType = "cross_country"
	FlightTraining     FlightType = "training"
	FlightPleasure     FlightType = "pleasure"
	FlightBusiness     FlightType = "business"
	FlightCharter      FlightType = "charter"
	FlightCargo        FlightType = "cargo"
	FlightMaintenance  FlightType = "maintenance"
	FlightOther        FlightType = "other"
)

var flightTypes = map[FlightType]bool{
	FlightLocal:        true,
	FlightCrossCountry: true,
	FlightTraining:     true,
	FlightPleasure:     true,
	FlightBusiness:     true,
	FlightCharter:      true,
	FlightCargo:        true,
	FlightMaintenance:  true,
	FlightOther:        true,
}

func (t FlightType) Valid() bool {
	return flightTypes[t]
}
