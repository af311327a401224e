package di

import (
	"github.com/gin-gonic/gin"

	mk "github.com/zetherabarter/Rec-Backend2/internal/testutils/mocks"
)

// MockedBackend bundles the engine with the mocks behind it so unit tests
// can set expectations while driving the real routes.
type MockedBackend struct {
	Registry   *mk.MockedRegistry
	Dispatcher *mk.MockEmailDispatcher
	Recorder   *mk.MockSummaryRecorder
	Engine     *gin.Engine
}
