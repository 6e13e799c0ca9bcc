package simnet

import (
	"github.com/Altair59/Elevator-Simulator/internal/logger"
)

var Log = logger.GetLogger()

const (
	MAX_DATAGRAM_LENGTH = 65507 //largest UDP payload over IPv4
	EVENT_BUFFER_LENGTH = 64
)
