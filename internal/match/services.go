package match

import (
	"net/url"
	"regexp"
	"strings"
)

// service is a hosted cloud service recognized by the host name of a URL.
type service struct {
	name    string
	pattern *regexp.Regexp
}

// knownServices is checked in order against the lower-cased host; the
// first hit wins, so narrower patterns come before broader ones.
var knownServices = []service{
	// Amazon Web Services
	{name: "Amazon S3", pattern: regexp.MustCompile(`(?:^|\.)s3[.-](?:[a-z0-9-]+\.)?amazonaws\.com$`)},
	{name: "Amazon API Gateway", pattern: regexp.MustCompile(`\.execute-api\.[a-z0-9-]+\.amazonaws\.com$`)},
	{name: "Amazon EC2", pattern: regexp.MustCompile(`^ec2-[0-9-]+\.[a-z0-9-]+\.compute\.amazonaws\.com$`)},
	{name: "Amazon Elastic Load Balancing", pattern: regexp.MustCompile(`\.elb\.amazonaws\.com$`)},
	{name: "Amazon CloudFront", pattern: regexp.MustCompile(`\.cloudfront\.net$`)},

	// Google Cloud
	{name: "Firebase Storage", pattern: regexp.MustCompile(`^firebasestorage\.googleapis\.com$`)},
	{name: "Google Cloud Storage", pattern: regexp.MustCompile(`(?:^|\.)storage\.googleapis\.com$`)},
	{name: "Google App Engine", pattern: regexp.MustCompile(`\.appspot\.com$`)},

	// Microsoft Azure
	{name: "Azure Blob Storage", pattern: regexp.MustCompile(`\.blob\.core\.windows\.net$`)},
	{name: "Azure Files", pattern: regexp.MustCompile(`\.file\.core\.windows\.net$`)},
	{name: "Azure Web Apps", pattern: regexp.MustCompile(`\.azurewebsites\.net$`)},
	{name: "Azure CDN", pattern: regexp.MustCompile(`\.azureedge\.net$`)},

	// Others
	{name: "DigitalOcean Spaces", pattern: regexp.MustCompile(`(?:^|\.)[a-z0-9-]+\.digitaloceanspaces\.com$`)},
	{name: "Alibaba Cloud OSS", pattern: regexp.MustCompile(`(?:^|\.)oss-[a-z0-9-]+\.aliyuncs\.com$`)},
	{name: "Cloudflare R2", pattern: regexp.MustCompile(`\.r2\.(?:dev|cloudflarestorage\.com)$`)},
}

// ServiceFor names the cloud service hosting rawURL, e.g. "Amazon S3" or
// "Azure Blob Storage". It returns "" for hosts it does not recognize.
func ServiceFor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}

	for _, s := range knownServices {
		if s.pattern.MatchString(host) {
			return s.name
		}
	}
	return ""
}
