package constants

const (
	MsgAirportNotFound  = "Airport not found"
	MsgAircraftNotFound = "Aircraft not found"
	MsgPilotNotFound    = "Pilot not found"
	MsgFlightNotFound   = "Flight not found"

	MsgDuplicateICAO        = "Airport with this ICAO code already exists"
	MsgDuplicateTailNumber  = "Aircraft with this tail number already exists"
	MsgDuplicateCertificate = "Pilot with this certificate number already exists"

	MsgInvalidCategory        = "Unknown aircraft category"
	MsgInvalidCertificateType = "Unknown pilot certificate type"
	MsgInvalidFlightType      = "Unknown flight type"
)
