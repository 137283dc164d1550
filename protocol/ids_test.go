package protocol_test

import (
	"testing"

	"github.com/joywire/joywire/protocol"
	"github.com/joywire/joywire/wire"
	"github.com/stretchr/testify/assert"
)

func TestSubcommandIDRoundTrip(t *testing.T) {
	known := []protocol.SubcommandID{
		protocol.SubcmdGetOnlyControllerState,
		protocol.SubcmdBluetoothManualPairing,
		protocol.SubcmdRequestDeviceInfo,
		protocol.SubcmdSetInputReportMode,
		protocol.SubcmdGetTriggerButtonsElapsedTime,
		protocol.SubcmdSetShipmentMode,
		protocol.SubcmdSPIRead,
		protocol.SubcmdSPIWrite,
		protocol.SubcmdSetMCUConf,
		protocol.SubcmdSetMCUState,
		protocol.SubcmdSetUnknownData,
		protocol.SubcmdSetPlayerLights,
		protocol.SubcmdSetHomeLight,
		protocol.SubcmdSetIMUMode,
		protocol.SubcmdSetIMUSens,
		protocol.SubcmdEnableVibration,
		protocol.SubcmdMaybeAccessory,
		protocol.SubcmdUnknown0x59,
		protocol.SubcmdUnknown0x5a,
		protocol.SubcmdUnknown0x5b,
		protocol.SubcmdUnknown0x5c,
	}
	for _, id := range known {
		assert.True(t, id.Valid(), "%v", id)
		got, ok := wire.FromID(id).ID()
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}

	_, ok := wire.NewRawID[protocol.SubcommandID](0x12).ID()
	assert.False(t, ok)
}

func TestInputReportIDNames(t *testing.T) {
	assert.Equal(t, "StandardFull", protocol.ReportStandardFull.String())
	assert.Equal(t, "Normal", protocol.ReportNormal.String())
	assert.True(t, protocol.ReportStandardAndSubcmd.Valid())
	assert.False(t, protocol.InputReportID(0x32).Valid())
}

func TestSubcommandIDNames(t *testing.T) {
	assert.Equal(t, "SPIRead", protocol.SubcmdSPIRead.String())
	assert.Equal(t, "SPIWrite", protocol.SubcmdSPIWrite.String())
	assert.Equal(t, "0x12", wire.NewRawID[protocol.SubcommandID](0x12).String())
}
