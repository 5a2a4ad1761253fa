package tnyulib

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"time"
)

/*
GetClient
Returns the http.Client every request goes through. Certificates found in
'cacert' are trusted on top of the system roots. A non-zero 'timeout' bounds
each request, redirects and body included.
*/
func GetClient(cacert string, timeout time.Duration) (http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cacert != "" {
		pool, err := loadCertPool(cacert)
		if err != nil {
			return http.Client{}, err
		}
		transport.TLSClientConfig = &tls.Config{
			RootCAs:    pool,
			MinVersion: tls.VersionTLS12,
		}
	}

	return http.Client{Transport: transport, Timeout: timeout}, nil
}

func loadCertPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read CA bundle: %w", err)
	}
	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in '%s'", path)
	}
	return pool, nil
}
