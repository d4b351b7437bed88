package spin

import "luckywheel/services"

var service *services.SpinService

// Init wires the shared spin service. Called once from routes.Setup.
func Init(svc *services.SpinService) {
	service = svc
}
