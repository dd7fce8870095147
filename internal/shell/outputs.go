package shell

import "strings"

func lines(ls ...string) string { return strings.Join(ls, "\n") }

var (
	reportTxt = lines(
		"Linux Learning Progress Report",
		"========================",
		"",
		"Date: December 10, 2024",
		"User: LinuxLearner",
		"",
		"Completed Commands:",
		"- Basic navigation",
		"- File operations",
		"- Text processing",
		"",
		"Next Steps:",
		"- Advanced scripting",
		"- System administration",
	)

	notesMd = lines(
		"# Linux Command Notes",
		"",
		"## Basic Commands",
		"- `pwd` - print working directory",
		"- `ls` - list files",
		"- `cd` - change directory",
		"",
		"## File Operations",
		"- `touch` - create empty file",
		"- `mkdir` - create directory",
		"- `cp` - copy files",
		"- `mv` - move/rename files",
		"- `rm` - remove files",
	)

	genericFile = lines(
		"This is the content of %s...",
		"Line 1: Sample text content",
		"Line 2: More file content",
		"Line 3: End of file",
	)

	grepOut = lines(
		"Found matching lines:",
		"report.txt:2:Linux Learning Progress Report",
		"notes.md:1:# Linux Command Notes",
		"notes.md:5:- `pwd` - print working directory",
	)

	headOut = lines(
		"First 10 lines of the file:",
		"Line 1", "Line 2", "Line 3", "Line 4", "Line 5",
		"Line 6", "Line 7", "Line 8", "Line 9", "Line 10",
	)

	tailOut = lines(
		"Last 10 lines of the file:",
		"Line 91", "Line 92", "Line 93", "Line 94", "Line 95",
		"Line 96", "Line 97", "Line 98", "Line 99", "Line 100",
	)

	psOut = lines(
		"USER       PID %CPU %MEM    VSZ   RSS TTY      STAT START   TIME COMMAND",
		"root         1  0.0  0.1  19356  1544 ?        Ss   10:23   0:01 /sbin/init",
		"user       123  1.2  2.3  45678  9012 pts/0    S+   10:30   0:05 bash",
		"user       456  0.5  1.1  23456  4567 pts/0    S+   10:35   0:02 python3",
		"user       789  2.1  3.2  67890 12345 pts/0    R+   10:40   0:08 node server.js",
	)

	topOut = lines(
		"Tasks: 156 total, 2 running, 154 sleeping",
		"%Cpu(s):  3.2 us,  1.1 sy,  0.0 ni, 95.7 id,  0.0 wa,  0.0 hi,  0.0 si,  0.0 st",
		"KiB Mem :  8048384 total,  2234567 used,  5813817 free,   345678 buffers",
		"KiB Swap:  2097148 total,        0 used,  2097148 free.  4567890 cached Mem",
		"",
		"  PID USER      PR  NI    VIRT    RES    SHR S  %CPU %MEM     TIME+ COMMAND",
		"  123 user      20   0   45678   9012   2345 S   1.2  2.3   0:05.67 bash",
		"  456 user      20   0   23456   4567   1234 S   0.5  1.1   0:02.34 python3",
	)

	htopOut = lines(
		"  1  [||||                      12.5%]   Tasks: 156, 312 thr; 2 running",
		"  2  [||                         6.1%]   Load average: 0.45 0.32 0.28",
		"  Mem[||||||||||          2.13G/7.67G]   Uptime: 5 days, 12:45:03",
		"  Swp[                       0K/2.00G]",
		"",
		"  PID USER      PRI  NI  VIRT   RES   SHR S CPU% MEM%   TIME+  Command",
		"  789 user       20   0 67890 12345  3456 R  2.1  3.2  0:08.12 node server.js",
		"  123 user       20   0 45678  9012  2345 S  1.2  2.3  0:05.67 bash",
		"  456 user       20   0 23456  4567  1234 S  0.5  1.1  0:02.34 python3",
	)

	jobsOut = lines(
		"[1]+  Running    backup.sh &",
		"[2]-  Stopped    vim report.txt",
	)

	unameOut = "Linux linuxlearn 5.15.0-56-generic #62-Ubuntu SMP x86_64 x86_64 x86_64 GNU/Linux"

	dfOut = lines(
		"Filesystem      Size  Used Avail Use% Mounted on",
		"/dev/sda1        50G  12G   36G  25% /",
		"/dev/sda2       200G  89G  101G  47% /home",
		"tmpfs           4.0G     0  4.0G   0% /dev/shm",
	)

	duOut = lines(
		"12K     ./documents/projects/website",
		"8.0K    ./documents/projects/app",
		"20K     ./documents/projects",
		"45K     ./documents",
		"156K    ./downloads",
		"89K     ./pictures",
		"234K    ./videos",
		"67K     ./scripts",
		"23K     ./config",
		"45K     ./logs",
		"1.2M    .",
	)

	freeOut = lines(
		"               total        used        free      shared  buff/cache   available",
		"Mem:           7.7Gi       2.1Gi       3.8Gi       234Mi       1.8Gi       5.1Gi",
		"Swap:          2.0Gi          0B       2.0Gi",
	)

	uptimeOut = " 14:32:15 up 5 days, 12:45,  3 users,  load average: 0.45, 0.32, 0.28"

	findOut = lines(
		"./documents/report.txt",
		"./documents/notes.md",
		"./documents/projects/website/index.html",
		"./downloads/backup.tar.gz",
		"./scripts/backup.sh",
		"./config/.bashrc",
	)

	locateOut = lines(
		"/home/user/documents/report.txt",
		"/home/user/scripts/backup.sh",
		"/var/log/system.log",
	)

	dateOut = "Mon Dec 10 14:32:45 UTC 2024"

	pingOut = lines(
		"PING %[1]s (93.184.216.34) 56(84) bytes of data.",
		"64 bytes from %[1]s (93.184.216.34): icmp_seq=1 ttl=56 time=%.1[2]f ms",
		"64 bytes from %[1]s (93.184.216.34): icmp_seq=2 ttl=56 time=%.1[3]f ms",
		"--- %[1]s ping statistics ---",
		"4 packets transmitted, 4 received, 0%% packet loss, time 3005ms",
		"rtt min/avg/max/mdev = 11.456/12.124/12.889/0.542 ms",
	)

	wgetOut = lines(
		"HTTP request sent, awaiting response... 200 OK",
		"Length: 15432 (15K) [text/html]",
		"Saving to: 'index.html'",
		"",
		"index.html          100%[===================>]  15.07K  --.-KB/s    in 0.001s",
		"",
		"2024-12-10 14:32:46 (12.3 MB/s) - 'index.html' saved [15432/15432]",
	)

	curlHeadOut = lines(
		"HTTP/1.1 200 OK",
		"Content-Type: text/html; charset=UTF-8",
		"Content-Length: 1256",
		"Date: Mon, 10 Dec 2024 14:32:45 GMT",
		"Server: ECS (nyb/1D2A)",
	)

	curlBodyOut = lines(
		"<!doctype html>",
		"<html>",
		"<head><title>Example Domain</title></head>",
		"<body><h1>Example Domain</h1></body>",
		"</html>",
	)

	netstatOut = lines(
		"Active Internet connections (only servers)",
		"Proto Recv-Q Send-Q Local Address           Foreign Address         State",
		"tcp        0      0 0.0.0.0:22              0.0.0.0:*               LISTEN",
		"tcp        0      0 127.0.0.1:5432          0.0.0.0:*               LISTEN",
		"tcp6       0      0 :::80                   :::*                    LISTEN",
		"udp        0      0 0.0.0.0:68              0.0.0.0:*",
	)

	ssOut = lines(
		"Netid State  Recv-Q Send-Q Local Address:Port  Peer Address:Port Process",
		"udp   UNCONN 0      0            0.0.0.0:68         0.0.0.0:*     users:((\"dhclient\",pid=612,fd=6))",
		"tcp   LISTEN 0      128          0.0.0.0:22         0.0.0.0:*     users:((\"sshd\",pid=845,fd=3))",
		"tcp   LISTEN 0      244        127.0.0.1:5432       0.0.0.0:*     users:((\"postgres\",pid=901,fd=5))",
		"tcp   LISTEN 0      511             [::]:80            [::]:*     users:((\"nginx\",pid=950,fd=6))",
	)

	nmapOut = lines(
		"Starting Nmap 7.80 ( https://nmap.org ) at 2024-12-10 14:32 UTC",
		"Nmap scan report for router.local (192.168.1.1)",
		"Host is up (0.0021s latency).",
		"Nmap scan report for linuxlearn (192.168.1.42)",
		"Host is up (0.00010s latency).",
		"Nmap done: 256 IP addresses (2 hosts up) scanned in 2.41 seconds",
	)

	tcpdumpOut = lines(
		"tcpdump: verbose output suppressed, use -v or -vv for full protocol decode",
		"listening on eth0, link-type EN10MB (Ethernet), capture size 262144 bytes",
		"14:32:45.101234 IP linuxlearn.52344 > 93.184.216.34.https: Flags [S], seq 1234567890, length 0",
		"14:32:45.112345 IP 93.184.216.34.https > linuxlearn.52344: Flags [S.], ack 1234567891, length 0",
		"2 packets captured",
	)

	iptablesOut = lines(
		"Chain INPUT (policy ACCEPT)",
		"target     prot opt source               destination",
		"ACCEPT     tcp  --  anywhere             anywhere             tcp dpt:ssh",
		"",
		"Chain FORWARD (policy DROP)",
		"target     prot opt source               destination",
		"",
		"Chain OUTPUT (policy ACCEPT)",
		"target     prot opt source               destination",
	)

	vmstatOut = lines(
		"procs -----------memory---------- ---swap-- -----io---- -system-- ------cpu-----",
		" r  b   swpd   free   buff  cache   si   so    bi    bo   in   cs us sy id wa st",
		" 1  0      0 3984512 345678 1887436    0    0    12    20  145  287  3  1 96  0  0",
	)

	iostatOut = lines(
		"Linux 5.15.0-56-generic (linuxlearn) \t12/10/2024 \t_x86_64_\t(2 CPU)",
		"",
		"avg-cpu:  %user   %nice %system %iowait  %steal   %idle",
		"           3.20    0.00    1.10    0.00    0.00   95.70",
		"",
		"Device             tps    kB_read/s    kB_wrtn/s    kB_read    kB_wrtn",
		"sda               2.45        12.30        20.10    1234567    2016789",
	)

	iotopOut = lines(
		"Total DISK READ:         0.00 B/s | Total DISK WRITE:        12.30 K/s",
		"  TID  PRIO  USER     DISK READ  DISK WRITE  SWAPIN     IO>    COMMAND",
		"  412 be/3 root        0.00 B/s    8.20 K/s  0.00 %  0.12 % [jbd2/sda1-8]",
		"  789 be/4 user        0.00 B/s    4.10 K/s  0.00 %  0.05 % node server.js",
	)

	lsofOut = lines(
		"COMMAND   PID USER   FD   TYPE DEVICE SIZE/OFF NODE NAME",
		"bash      123 user  cwd    DIR    8,2     4096 1234 /home/user",
		"python3   456 user    3u  IPv4  23456      0t0  TCP localhost:8000 (LISTEN)",
		"node      789 user   20u  IPv4  34567      0t0  TCP *:3000 (LISTEN)",
	)

	aptUpdateOut = lines(
		"Hit:1 http://archive.ubuntu.com/ubuntu jammy InRelease",
		"Get:2 http://security.ubuntu.com/ubuntu jammy-security InRelease [110 kB]",
		"Get:3 http://archive.ubuntu.com/ubuntu jammy-updates InRelease [119 kB]",
		"Fetched 229 kB in 1s (245 kB/s)",
		"Reading package lists... Done",
		"Building dependency tree... Done",
		"All packages are up to date.",
	)

	aptInstallOut = lines(
		"Reading package lists... Done",
		"Building dependency tree... Done",
		"The following NEW packages will be installed:",
		"  %[1]s",
		"0 upgraded, 1 newly installed, 0 to remove and 0 not upgraded.",
		"Setting up %[1]s ...",
	)

	aptRemoveOut = lines(
		"Reading package lists... Done",
		"The following packages will be REMOVED:",
		"  %[1]s",
		"0 upgraded, 0 newly installed, 1 to remove and 0 not upgraded.",
		"Removing %[1]s ...",
	)

	dpkgOut = lines(
		"Desired=Unknown/Install/Remove/Purge/Hold",
		"| Status=Not/Inst/Conf-files/Unpacked/halF-conf/Half-inst/trig-aWait/Trig-pend",
		"||/ Name           Version          Architecture Description",
		"+++-==============-================-============-=================================",
		"ii  bash           5.1-6ubuntu1     amd64        GNU Bourne Again SHell",
		"ii  coreutils      8.32-4.1ubuntu1  amd64        GNU core utilities",
		"ii  curl           7.81.0-1ubuntu1  amd64        command line tool for transferring data with URL syntax",
		"ii  vim            2:8.2.3995-1     amd64        Vi IMproved - enhanced vi editor",
	)

	snapOut = lines(
		"Name    Version   Rev    Tracking       Publisher   Notes",
		"core20  20230207  1828   latest/stable  canonical✓  base",
		"lxd     5.0.2     24322  5.0/stable     canonical✓  -",
	)

	flatpakOut = lines(
		"Name           Application ID              Version  Branch  Installation",
		"GNU Image...   org.gimp.GIMP               2.10.34  stable  system",
	)

	tarListOut = lines(
		"documents/",
		"documents/report.txt",
		"documents/notes.md",
		"documents/presentation.pdf",
	)

	envVars = []string{
		"SHELL=/bin/bash",
		"USER=user",
		"HOME=/home/user",
		"LANG=en_US.UTF-8",
		"TERM=xterm-256color",
		"HOSTNAME=linuxlearn",
		"EDITOR=vim",
		"PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin",
	}
)

var historyOut = lines(
	"    1  pwd",
	"    2  ls",
	"    3  cd documents",
	"    4  cat report.txt",
)
