package main

// General API information for swag
//
// @title           Skycast API
// @version         1.0
// @description     Current weather conditions by city name or coordinates, plus the state of the browser weather widget.
// @contact.name    API Support
// @contact.email   support@example.com
// @host            localhost:8080
// @BasePath        /
