// Package web hosts the browser-facing coursehub service: the profile page,
// its interest selection flow and the shared app shell around it.
package web
