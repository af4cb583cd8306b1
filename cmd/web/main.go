// @title           MessMet API
// @version         1.0
// @description     API системы управления столовой: планы питания, подписки, оплата, посещаемость.
// @contact.name    MessMet
// @contact.email   support@messmet.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "messmet_backend/internal/app"

func main() {
	app.Run()
}
