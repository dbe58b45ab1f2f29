package detect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/elmparse/internal/detect"
	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/testfixtures"
)

func TestDetectSCORM12(t *testing.T) {
	kind, err := detect.Detect(testfixtures.SCORM12HappyPath())
	require.NoError(t, err)
	assert.Equal(t, model.KindSCORM12, kind)
}

func TestDetectSCORM2004ByNamespace(t *testing.T) {
	kind, err := detect.Detect(testfixtures.SCORM2004FullSequencing())
	require.NoError(t, err)
	assert.Equal(t, model.KindSCORM2004, kind)
}

func TestDetectAICC(t *testing.T) {
	kind, err := detect.Detect(testfixtures.AICCMinimumViable())
	require.NoError(t, err)
	assert.Equal(t, model.KindAICC, kind)
}

func TestDetectCMI5(t *testing.T) {
	kind, err := detect.Detect(testfixtures.CMI5AlwaysXAPI())
	require.NoError(t, err)
	assert.Equal(t, model.KindCMI5, kind)
}

func TestDetectXAPI(t *testing.T) {
	kind, err := detect.Detect(testfixtures.XAPICourseActivity())
	require.NoError(t, err)
	assert.Equal(t, model.KindXAPI, kind)
}

// Detect must always return a known variant or a non-empty
// DetectionError, never panic.
func TestDetectFailureEnumeratesProbes(t *testing.T) {
	_, err := detect.Detect(testfixtures.DetectionFailure())
	require.Error(t, err)
	var detErr *elmerrors.DetectionError
	require.ErrorAs(t, err, &detErr)
	assert.NotEmpty(t, detErr.Error())
	assert.Contains(t, detErr.Observed, "readme.txt")
	assert.NotEmpty(t, detErr.Probes)
}
