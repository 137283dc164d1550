// Package protocol defines the closed identifier sets of the controller's
// HID protocol: report IDs, subcommand IDs and the Bluetooth device IDs of
// the supported controllers.
package protocol

import "fmt"

const NintendoVendorID uint16 = 1406

const (
	JoyConLBT          uint16 = 0x2006
	JoyConRBT          uint16 = 0x2007
	ProController      uint16 = 0x2009
	JoyConChargingGrip uint16 = 0x200e
)

// HIDProductIDs lists every product ID this protocol applies to.
var HIDProductIDs = []uint16{JoyConLBT, JoyConRBT, ProController, JoyConChargingGrip}

// InputReportID selects the layout of a device-originated report.
type InputReportID uint8

const (
	ReportNormal            InputReportID = 0x3F
	ReportStandardAndSubcmd InputReportID = 0x21
	ReportMCUFwUpdate       InputReportID = 0x23
	ReportStandardFull      InputReportID = 0x30
	ReportStandardFullMCU   InputReportID = 0x31
	// 0x32 and 0x33 are not used by any known firmware.
)

func (id InputReportID) Valid() bool {
	switch id {
	case ReportNormal, ReportStandardAndSubcmd, ReportMCUFwUpdate,
		ReportStandardFull, ReportStandardFullMCU:
		return true
	}
	return false
}

func (id InputReportID) String() string {
	switch id {
	case ReportNormal:
		return "Normal"
	case ReportStandardAndSubcmd:
		return "StandardAndSubcmd"
	case ReportMCUFwUpdate:
		return "MCUFwUpdate"
	case ReportStandardFull:
		return "StandardFull"
	case ReportStandardFullMCU:
		return "StandardFullMCU"
	}
	return fmt.Sprintf("InputReportID(0x%02x)", uint8(id))
}

// SubcommandID identifies one host-originated command and the matching
// device reply. All values the firmware does not understand act as a Nop.
type SubcommandID uint8

const (
	SubcmdGetOnlyControllerState        SubcommandID = 0x00
	SubcmdBluetoothManualPairing        SubcommandID = 0x01
	SubcmdRequestDeviceInfo             SubcommandID = 0x02
	SubcmdSetInputReportMode            SubcommandID = 0x03
	SubcmdGetTriggerButtonsElapsedTime  SubcommandID = 0x04
	SubcmdSetShipmentMode               SubcommandID = 0x08
	SubcmdSPIRead                       SubcommandID = 0x10
	SubcmdSPIWrite                      SubcommandID = 0x11
	SubcmdSetMCUConf                    SubcommandID = 0x21
	SubcmdSetMCUState                   SubcommandID = 0x22
	SubcmdSetUnknownData                SubcommandID = 0x24
	SubcmdSetPlayerLights               SubcommandID = 0x30
	SubcmdSetHomeLight                  SubcommandID = 0x38
	SubcmdSetIMUMode                    SubcommandID = 0x40
	SubcmdSetIMUSens                    SubcommandID = 0x41
	SubcmdEnableVibration               SubcommandID = 0x48

	// 0x58-0x5c have been observed on accessories (Ring-Con) but their full
	// semantics are undocumented. They are kept as opaque identifiers.
	SubcmdMaybeAccessory SubcommandID = 0x58
	SubcmdUnknown0x59    SubcommandID = 0x59
	SubcmdUnknown0x5a    SubcommandID = 0x5a
	SubcmdUnknown0x5b    SubcommandID = 0x5b
	SubcmdUnknown0x5c    SubcommandID = 0x5c
)

func (id SubcommandID) Valid() bool {
	switch id {
	case SubcmdGetOnlyControllerState, SubcmdBluetoothManualPairing,
		SubcmdRequestDeviceInfo, SubcmdSetInputReportMode,
		SubcmdGetTriggerButtonsElapsedTime, SubcmdSetShipmentMode,
		SubcmdSPIRead, SubcmdSPIWrite, SubcmdSetMCUConf, SubcmdSetMCUState,
		SubcmdSetUnknownData, SubcmdSetPlayerLights, SubcmdSetHomeLight,
		SubcmdSetIMUMode, SubcmdSetIMUSens, SubcmdEnableVibration,
		SubcmdMaybeAccessory, SubcmdUnknown0x59, SubcmdUnknown0x5a,
		SubcmdUnknown0x5b, SubcmdUnknown0x5c:
		return true
	}
	return false
}

func (id SubcommandID) String() string {
	switch id {
	case SubcmdGetOnlyControllerState:
		return "GetOnlyControllerState"
	case SubcmdBluetoothManualPairing:
		return "BluetoothManualPairing"
	case SubcmdRequestDeviceInfo:
		return "RequestDeviceInfo"
	case SubcmdSetInputReportMode:
		return "SetInputReportMode"
	case SubcmdGetTriggerButtonsElapsedTime:
		return "GetTriggerButtonsElapsedTime"
	case SubcmdSetShipmentMode:
		return "SetShipmentMode"
	case SubcmdSPIRead:
		return "SPIRead"
	case SubcmdSPIWrite:
		return "SPIWrite"
	case SubcmdSetMCUConf:
		return "SetMCUConf"
	case SubcmdSetMCUState:
		return "SetMCUState"
	case SubcmdSetUnknownData:
		return "SetUnknownData"
	case SubcmdSetPlayerLights:
		return "SetPlayerLights"
	case SubcmdSetHomeLight:
		return "SetHomeLight"
	case SubcmdSetIMUMode:
		return "SetIMUMode"
	case SubcmdSetIMUSens:
		return "SetIMUSens"
	case SubcmdEnableVibration:
		return "EnableVibration"
	case SubcmdMaybeAccessory:
		return "MaybeAccessory"
	case SubcmdUnknown0x59:
		return "Unknown0x59"
	case SubcmdUnknown0x5a:
		return "Unknown0x5a"
	case SubcmdUnknown0x5b:
		return "Unknown0x5b"
	case SubcmdUnknown0x5c:
		return "Unknown0x5c"
	}
	return fmt.Sprintf("SubcommandID(0x%02x)", uint8(id))
}
