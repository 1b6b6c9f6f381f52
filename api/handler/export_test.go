package handler

var MapError = mapError
